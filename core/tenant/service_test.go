package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/services/emsapi"
)

func testConf(baseURL string) *core.Config {
	return &core.Config{
		APIBaseURL: baseURL,
		Cookie: core.CookieConfig{
			TenantMetaTTL:       12 * time.Hour,
			InstituteProfileTTL: 12 * time.Hour,
		},
	}
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, session.Jar, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	conf := testConf(srv.URL)
	jar := session.NewMemJar()
	client := emsapi.New(conf, StaticResolver{Domain: "greenfield.example"})
	return NewService(client, jar, conf), jar, &calls
}

func Test_Service_FetchMeta_cachesInCookie(t *testing.T) {
	svc, jar, calls := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/meta", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"domain":"greenfield.example","name":"Greenfield Academy","status":{"active":true}}}`))
	})

	meta, err := svc.FetchMeta(context.Background(), false)
	assert.NoError(t, err)
	assert.Equal(t, "Greenfield Academy", meta.Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	_, ok := jar.Get(MetaCookieName)
	assert.True(t, ok)

	// a fresh service on the same jar serves the cookie without any HTTP
	client := emsapi.New(testConf("http://backend.invalid"), StaticResolver{Domain: "greenfield.example"})
	cached := NewService(client, jar, testConf("http://backend.invalid"))
	meta, err = cached.FetchMeta(context.Background(), false)
	assert.NoError(t, err)
	assert.Equal(t, "Greenfield Academy", meta.Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func Test_Service_FetchMeta_forceBypassesCache(t *testing.T) {
	svc, _, calls := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":1,"name":"Greenfield Academy"}}`))
	})

	_, err := svc.FetchMeta(context.Background(), false)
	assert.NoError(t, err)
	_, err = svc.FetchMeta(context.Background(), true)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func Test_Service_FetchMeta_failure(t *testing.T) {
	svc, _, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := svc.FetchMeta(context.Background(), false)
	assert.Error(t, err)
	assert.Equal(t, StateError, svc.State)
	assert.NotEmpty(t, svc.Err)
	assert.Nil(t, svc.Meta)
}

func Test_Meta_Inactive(t *testing.T) {
	active := true
	inactive := false
	tests := []struct {
		name string
		meta Meta
		want bool
	}{
		{name: "no status block", meta: Meta{}, want: false},
		{name: "status without active flag", meta: Meta{Status: &MetaStatus{}}, want: false},
		{name: "explicitly active", meta: Meta{Status: &MetaStatus{Active: &active}}, want: false},
		{name: "explicitly inactive", meta: Meta{Status: &MetaStatus{Active: &inactive}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.meta.Inactive())
		})
	}
}

func Test_HeadFor(t *testing.T) {
	head := HeadFor(nil)
	assert.Equal(t, DefaultTitle, head.Title)
	assert.Empty(t, head.CSSVars)

	head = HeadFor(&Meta{
		Name: "Greenfield Academy",
		Branding: Branding{
			FaviconURL:     "https://cdn.example/fav.ico",
			PrimaryColor:   "#0a0",
			SecondaryColor: "#fff",
		},
		Locale: Locale{Default: "bn"},
	})
	assert.Equal(t, "Greenfield Academy — "+DefaultTitle, head.Title)
	assert.Equal(t, "https://cdn.example/fav.ico", head.Favicon)
	assert.Equal(t, "bn", head.Lang)
	assert.Equal(t, "#0a0", head.CSSVars["--brand-primary"])
	assert.Equal(t, "#fff", head.CSSVars["--brand-secondary"])
}
