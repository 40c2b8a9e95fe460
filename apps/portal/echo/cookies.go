package echoportal

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ihsanems/portal/core/session"
)

// CookieJar adapts one navigation's request/response cookies to
// session.Jar. Writes land on the response and are readable back within
// the same request, so a login followed by a guarded render sees the
// fresh token.
type CookieJar struct {
	ctx    echo.Context
	secure bool
	local  map[string]*string // in-request writes; nil marks a delete
}

var _ session.Jar = (*CookieJar)(nil)

func NewCookieJar(ctx echo.Context, secure bool) *CookieJar {
	return &CookieJar{
		ctx:    ctx,
		secure: secure,
		local:  make(map[string]*string),
	}
}

func (j *CookieJar) Get(name string) (string, bool) {
	if val, ok := j.local[name]; ok {
		if val == nil {
			return "", false
		}
		return *val, true
	}
	cookie, err := j.ctx.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (j *CookieJar) Set(name, value string, ttl time.Duration) {
	val := value
	j.local[name] = &val

	cookie := j.newCookie(name, value)
	if ttl > 0 {
		cookie.MaxAge = int(ttl.Seconds())
		cookie.Expires = time.Now().Add(ttl)
	}
	j.ctx.SetCookie(cookie)
}

func (j *CookieJar) Del(name string) {
	j.local[name] = nil

	cookie := j.newCookie(name, "")
	cookie.MaxAge = -1
	j.ctx.SetCookie(cookie)
}

func (j *CookieJar) newCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
