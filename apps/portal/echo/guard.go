package echoportal

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ihsanems/portal/core/ems"
)

var (
	errTenantInactive = echo.NewHTTPError(http.StatusForbidden, "Tenant inactive")
	errHttpForbidden  = echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	errAdminsOnly     = echo.NewHTTPError(http.StatusForbidden, "Admins only")
)

// guard enforces the navigation policy before page handlers, in order;
// the first failing check wins and later ones never run:
//  1. tenant metadata is loaded (failures never block navigation);
//  2. an explicitly deactivated tenant blocks everything;
//  3. an unauthenticated visitor is sent to the login page, keeping the
//     requested path as the redirect target;
//  4. a route-declared role set must contain the user's role;
//  5. the admin area requires an admin role regardless of route roles.
func (s *server) guard(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sc := s.scope(ctx)
			reqCtx := ctx.Request().Context()
			path := ctx.Request().URL.Path

			_, _ = sc.tenant.FetchMeta(reqCtx, false)

			if meta := sc.tenant.Meta; meta != nil && meta.Inactive() {
				return errTenantInactive
			}

			if !sc.session.IsAuthenticated() && sc.session.Token() != "" {
				_, _ = sc.session.FetchMe(reqCtx)
			}
			if !sc.session.IsAuthenticated() {
				return ctx.Redirect(http.StatusFound, s.loginURL(path))
			}

			if len(roles) > 0 && !containsRole(roles, sc.session.Role()) {
				return errHttpForbidden
			}

			if strings.HasPrefix(path, s.deps.Conf.Server.AdminPathPrefix) &&
				!ems.IsAdminRole(sc.session.Role()) {
				return errAdminsOnly
			}

			return next(ctx)
		}
	}
}

// loginURL keeps the requested path so login can resume the navigation;
// the root path carries no redirect param.
func (s *server) loginURL(path string) string {
	login := s.deps.Conf.Server.LoginPath
	if path == "" || path == "/" {
		return login
	}
	return login + "?redirect=" + url.QueryEscape(path)
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
