package echoportal

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/core/ems"
)

type fakeBackend struct {
	srv       *httptest.Server
	metaJSON  string
	metaCalls int32
}

// tokens are "tok-<Role>"; /v1/me derives the role from the bearer token.
func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		metaJSON: `{"data":{"id":1,"domain":"demo.example","name":"Greenfield Academy","status":{"active":true}}}`,
	}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/meta":
			atomic.AddInt32(&b.metaCalls, 1)
			_, _ = w.Write([]byte(b.metaJSON))
		case "/v1/me":
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer tok-") {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
				return
			}
			role := strings.TrimPrefix(auth, "Bearer tok-")
			_, _ = fmt.Fprintf(w, `{"data":{"id":1,"name":"Test User","role":%q}}`, role)
		case "/v1/auth/login":
			_, _ = w.Write([]byte(`{"token":"tok-Owner","user":{"id":1,"name":"Test User","role":"Owner"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		}
	}))
	t.Cleanup(b.srv.Close)
	return b
}

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (Server, *fakeBackend) {
	backend := newFakeBackend(t)

	conf := &core.Config{
		Debug:    true,
		TestMode: true,

		APIBaseURL: backend.srv.URL,
		Server: core.ServerConfig{
			Host:            "portal.test",
			LoginPath:       "/auth/login",
			AdminPathPrefix: "/admin",
		},
		Cookie: core.CookieConfig{
			TenantMetaTTL:       12 * time.Hour,
			InstituteProfileTTL: 12 * time.Hour,
		},
	}

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	ems.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:           conf,
		Logger:         nopLogger{},
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	}), backend
}

func get(srv Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = "demo.example:3000"
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func authCookie(role string) *http.Cookie {
	return &http.Cookie{Name: "auth_token", Value: "tok-" + role}
}

func Test_guard_unauthenticatedRedirectsToLogin(t *testing.T) {
	srv, _ := setup(t)

	rec := get(srv, "/dashboard")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login?redirect=%2Fdashboard", rec.Header().Get("Location"))

	// the root path carries no redirect param
	rec = get(srv, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

func Test_guard_staleTokenRedirects(t *testing.T) {
	srv, _ := setup(t)

	rec := get(srv, "/dashboard", &http.Cookie{Name: "auth_token", Value: "bogus"})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/auth/login")
	// the revoked cookie is cleared on the way out
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" {
			assert.Equal(t, -1, cookie.MaxAge)
		}
	}
}

func Test_guard_authenticatedPageRenders(t *testing.T) {
	srv, _ := setup(t)

	rec := get(srv, "/dashboard", authCookie("Teacher"))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Greenfield Academy")
	assert.Contains(t, body, "Test User")
}

func Test_guard_adminArea(t *testing.T) {
	srv, _ := setup(t)

	// non-admin roles are rejected
	rec := get(srv, "/admin", authCookie("Student"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admins only")

	for _, role := range ems.AdminRoles {
		rec = get(srv, "/admin", authCookie(role))
		assert.Equal(t, http.StatusOK, rec.Code, "role %s", role)
	}
}

func Test_guard_routeRoles(t *testing.T) {
	srv, _ := setup(t)

	// Teacher passes the admin prefix check but not the route's role set
	rec := get(srv, "/admin/users", authCookie("Teacher"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}

func Test_guard_inactiveTenant(t *testing.T) {
	srv, backend := setup(t)
	backend.metaJSON = `{"data":{"id":1,"name":"Greenfield Academy","status":{"active":false}}}`

	rec := get(srv, "/dashboard", authCookie("Owner"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tenant inactive")
}

func Test_guard_metaFailureDoesNotBlock(t *testing.T) {
	srv, backend := setup(t)
	backend.metaJSON = `not json`

	rec := get(srv, "/dashboard", authCookie("Owner"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_guard_tenantMetaCachedAcrossRequests(t *testing.T) {
	srv, backend := setup(t)

	rec := get(srv, "/dashboard", authCookie("Owner"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.metaCalls))

	var metaCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "tenant_meta" {
			metaCookie = cookie
		}
	}
	if metaCookie == nil {
		t.Fatal("tenant_meta cookie not set")
	}

	rec = get(srv, "/dashboard", authCookie("Owner"), metaCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.metaCalls))
}

func Test_login_setsCookieAndRedirects(t *testing.T) {
	srv, _ := setup(t)

	form := url.Values{
		"identifier": {"owner@demo.example"},
		"password":   {"G00d#pass"},
		"redirect":   {"/students"},
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Host = "demo.example:3000"
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/students", rec.Header().Get("Location"))

	var token string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" {
			token = cookie.Value
		}
	}
	assert.Equal(t, "tok-Owner", token)
}

func Test_login_rejectsOffsiteRedirect(t *testing.T) {
	srv, _ := setup(t)

	form := url.Values{
		"identifier": {"owner@demo.example"},
		"password":   {"G00d#pass"},
		"redirect":   {"https://evil.example/"},
	}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Host = "demo.example:3000"
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func Test_logout_clearsSessionAndRedirects(t *testing.T) {
	srv, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Host = "demo.example:3000"
	req.AddCookie(authCookie("Owner"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "auth_token" && cookie.MaxAge == -1 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
