package tenant

import (
	"context"
	"encoding/json"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/services/emsapi"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// MetaCookieName caches the tenant metadata blob between navigations.
const MetaCookieName = "tenant_meta"

// Service loads and caches the tenant metadata for the current domain.
// Like the session manager it belongs to a single navigation/request.
type Service struct {
	client *emsapi.Client // anonymous: /v1/meta must work before login
	cache  *session.Cache

	Meta  *Meta
	State State
	Err   string
}

func NewService(client *emsapi.Client, jar session.Jar, conf *core.Config) *Service {
	return &Service{
		client: client,
		cache:  session.NewCache(jar, MetaCookieName, conf.Cookie.TenantMetaTTL),
		State:  StateIdle,
	}
}

// FetchMeta returns the tenant metadata, reading the cookie cache first
// unless force is set. A cached hit issues no HTTP call.
func (s *Service) FetchMeta(ctx context.Context, force bool) (*Meta, error) {
	if !force {
		if s.State == StateLoading || s.State == StateReady {
			return s.Meta, nil
		}
		var cached Meta
		if s.cache.Get(&cached) {
			s.Meta = &cached
			s.State = StateReady
			return s.Meta, nil
		}
	}

	s.State = StateLoading
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/v1/meta", nil, &raw); err != nil {
		s.Err = core.UserMessage(err, "Failed to load tenant meta")
		s.State = StateError
		return nil, err
	}
	var meta Meta
	if err := emsapi.DecodeEntity(raw, &meta); err != nil {
		s.Err = core.UserMessage(err, "Failed to load tenant meta")
		s.State = StateError
		return nil, err
	}

	s.Meta = &meta
	s.State = StateReady
	s.cache.Set(meta)
	return s.Meta, nil
}

// Invalidate drops the cached metadata, forcing the next FetchMeta to hit
// the backend.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
	s.Meta = nil
	s.State = StateIdle
	s.Err = ""
}
