package echoportal

import (
	"net"

	"github.com/labstack/echo/v4"

	"github.com/ihsanems/portal/core/session"
	"github.com/ihsanems/portal/core/tenant"
	"github.com/ihsanems/portal/services/emsapi"
)

const scopeKey = "portal.scope"

// scope is the per-navigation dependency graph: cookie jar, API clients,
// session manager and tenant service all share the request's lifetime.
type scope struct {
	jar     *CookieJar
	pub     *emsapi.Client
	api     *emsapi.Client
	session *session.Manager
	tenant  *tenant.Service
}

// scope returns the request's scope, wiring it up on first use. The
// tenant domain is derived from the inbound Host header and stashed in
// the request context for the resolver.
func (s *server) scope(ctx echo.Context) *scope {
	if sc, ok := ctx.Get(scopeKey).(*scope); ok {
		return sc
	}

	req := ctx.Request()
	host := req.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	req = req.WithContext(tenant.WithDomain(req.Context(), host))
	ctx.SetRequest(req)

	jar := NewCookieJar(ctx, !s.deps.Conf.Debug)
	tokens := session.NewTokenStore(jar)
	resolver := tenant.HostResolver{}
	pub := emsapi.New(s.deps.Conf, resolver)
	api := emsapi.NewAuth(s.deps.Conf, resolver, tokens)

	sc := &scope{
		jar:     jar,
		pub:     pub,
		api:     api,
		session: session.NewManager(tokens, pub, api),
		tenant:  tenant.NewService(pub, jar, s.deps.Conf),
	}
	sc.session.Init()

	ctx.Set(scopeKey, sc)
	return sc
}
