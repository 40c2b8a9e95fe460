package session

// AuthCookieName is the session credential cookie.
const AuthCookieName = "auth_token"

// TokenStore holds the bearer token in memory, persisted as a session
// cookie. It is the TokenSource of the authenticated API client.
type TokenStore struct {
	jar   Jar
	token string
}

func NewTokenStore(jar Jar) *TokenStore {
	return &TokenStore{jar: jar}
}

// Init loads a previously persisted token from the cookie into memory.
// Side-effect-free when no cookie is present.
func (t *TokenStore) Init() {
	if t.token != "" {
		return
	}
	if value, ok := t.jar.Get(AuthCookieName); ok {
		t.token = value
	}
}

func (t *TokenStore) Token() string {
	return t.token
}

func (t *TokenStore) Set(token string) {
	t.token = token
	if token == "" {
		t.jar.Del(AuthCookieName)
		return
	}
	t.jar.Set(AuthCookieName, token, 0 /* session cookie */)
}

func (t *TokenStore) Clear() {
	t.token = ""
	t.jar.Del(AuthCookieName)
}
