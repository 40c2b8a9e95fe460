package session

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ihsanems/portal/core"
	"github.com/ihsanems/portal/services/emsapi"
)

type Status string

const (
	StatusIdle           Status = "idle"
	StatusAuthenticating Status = "authenticating"
	StatusReady          Status = "ready"
	StatusError          Status = "error"
)

// User is the authenticated profile returned by the backend.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Photo string `json:"photo,omitempty"`
}

// Manager owns the auth session lifecycle: login/logout/me-refresh against
// the backend, token persistence through the cookie-backed TokenStore, and
// the authentication status exposed to the rest of the app.
//
// A Manager belongs to a single navigation/request; it is not safe for
// concurrent use.
type Manager struct {
	tokens *TokenStore
	pub    *emsapi.Client // anonymous: login
	api    *emsapi.Client // authenticated: me, logout

	User   *User
	Status Status
	Err    string
}

func NewManager(tokens *TokenStore, pub, api *emsapi.Client) *Manager {
	return &Manager{
		tokens: tokens,
		pub:    pub,
		api:    api,
		Status: StatusIdle,
	}
}

// Init loads a persisted token from the session cookie into memory.
func (m *Manager) Init() {
	m.tokens.Init()
}

// IsAuthenticated requires both a token and a loaded profile: a stale
// cookie token alone does not count until FetchMe has confirmed it.
func (m *Manager) IsAuthenticated() bool {
	return m.tokens.Token() != "" && m.User != nil
}

func (m *Manager) Token() string {
	return m.tokens.Token()
}

func (m *Manager) Role() string {
	if m.User == nil {
		return ""
	}
	return m.User.Role
}

type (
	loginPayload struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
		Device     string `json:"device"`
	}

	loginResponse struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
)

// Login exchanges credentials for a token, persists it and loads the
// profile. On failure all session state is cleared and the original error
// is returned with the extracted message recorded in Err.
func (m *Manager) Login(ctx context.Context, identifier, password, device string) (*User, error) {
	m.Status = StatusAuthenticating
	m.Err = ""

	var res loginResponse
	err := m.pub.Post(ctx, "/v1/auth/login", loginPayload{
		Identifier: core.CleanString(identifier, true /* lower */),
		Password:   password,
		Device:     device,
	}, &res)
	if err != nil {
		m.clearState()
		m.Status = StatusError
		m.Err = core.UserMessage(err, "Login failed")
		return nil, err
	}

	m.tokens.Set(res.Token)
	m.User = res.User
	m.Status = StatusReady
	return res.User, nil
}

// FetchMe refreshes the profile for the current token. A 401 is
// authoritative proof the session is invalid and tears down token, cookie
// and user; any other failure leaves them untouched and records Err.
func (m *Manager) FetchMe(ctx context.Context) (*User, error) {
	m.Err = ""

	var raw json.RawMessage
	if err := m.api.Get(ctx, "/v1/me", nil, &raw); err != nil {
		if core.IsAPIStatus(err, http.StatusUnauthorized) {
			m.clearState()
		}
		m.Err = core.UserMessage(err, "Failed to load profile")
		return nil, err
	}

	var me User
	if err := emsapi.DecodeEntity(raw, &me); err != nil {
		m.Err = core.UserMessage(err, "Failed to load profile")
		return nil, err
	}

	m.User = &me
	if m.tokens.Token() != "" && m.Status != StatusAuthenticating {
		m.Status = StatusReady
	}
	return m.User, nil
}

// Logout revokes the current token. The revoke call is best-effort: local
// session state is cleared regardless of the request outcome.
func (m *Manager) Logout(ctx context.Context) {
	_ = m.api.Post(ctx, "/v1/auth/logout", nil, nil)
	m.clearState()
}

// LogoutAll revokes every token issued to the user (global revoke).
func (m *Manager) LogoutAll(ctx context.Context) {
	_ = m.api.Post(ctx, "/v1/auth/logout-all", nil, nil)
	m.clearState()
}

func (m *Manager) clearState() {
	m.tokens.Clear()
	m.User = nil
	m.Status = StatusIdle
	m.Err = ""
}
