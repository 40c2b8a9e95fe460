package tenant

import (
	"context"
	"encoding/json"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/services/emsapi"
)

const (
	// ProfileCookieName caches the institute profile blob.
	ProfileCookieName = "institute_profile"

	profileEndpoint = "/v1/institute/profile"
)

// InstituteService loads and updates the institute profile, cached in a
// cookie the same way the tenant metadata is.
type InstituteService struct {
	client *emsapi.Client // authenticated: the profile is an admin surface
	cache  *session.Cache

	Profile *InstituteProfile
	Loading bool
	Saving  bool
	Err     string
}

func NewInstituteService(client *emsapi.Client, jar session.Jar, conf *core.Config) *InstituteService {
	return &InstituteService{
		client: client,
		cache:  session.NewCache(jar, ProfileCookieName, conf.Cookie.InstituteProfileTTL),
	}
}

// FetchProfile returns the institute profile, reading the cookie cache
// first unless force is set.
func (s *InstituteService) FetchProfile(ctx context.Context, force bool) (*InstituteProfile, error) {
	if !force {
		var cached InstituteProfile
		if s.cache.Get(&cached) {
			s.Profile = normalizeProfile(&cached)
			return s.Profile, nil
		}
	}

	s.Loading = true
	s.Err = ""
	defer func() { s.Loading = false }()

	var raw json.RawMessage
	if err := s.client.Get(ctx, profileEndpoint, nil, &raw); err != nil {
		s.Err = core.UserMessage(err, "Failed to load institute profile")
		return nil, err
	}
	var profile InstituteProfile
	if err := emsapi.DecodeEntity(raw, &profile); err != nil {
		s.Err = core.UserMessage(err, "Failed to load institute profile")
		return nil, err
	}

	s.Profile = normalizeProfile(&profile)
	s.cache.Set(s.Profile)
	return s.Profile, nil
}

// UpdateInstituteProfile is the payload for profile updates;
// contact.address is required by the backend.
type UpdateInstituteProfile struct {
	Names   *InstituteNames  `json:"names,omitempty"`
	Contact InstituteContact `json:"contact" validate:"required"`
}

func (s *InstituteService) UpdateProfile(ctx context.Context, data UpdateInstituteProfile) (*InstituteProfile, error) {
	s.Saving = true
	s.Err = ""
	defer func() { s.Saving = false }()

	var raw json.RawMessage
	if err := s.client.Patch(ctx, profileEndpoint, data, &raw); err != nil {
		s.Err = core.UserMessage(err, "Failed to update institute profile")
		return nil, err
	}
	var profile InstituteProfile
	if err := emsapi.DecodeEntity(raw, &profile); err != nil {
		s.Err = core.UserMessage(err, "Failed to update institute profile")
		return nil, err
	}

	s.Profile = normalizeProfile(&profile)
	s.cache.Set(s.Profile)
	return s.Profile, nil
}

// normalizeProfile pins the minimal shape callers rely on.
func normalizeProfile(p *InstituteProfile) *InstituteProfile {
	if p == nil {
		return &InstituteProfile{}
	}
	return p
}
