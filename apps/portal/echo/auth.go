package echoportal

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/ihsanems/portal/core"
)

var errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")

type loginForm struct {
	Identifier string `json:"identifier" form:"identifier" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
	Redirect   string `json:"redirect" form:"redirect"`
}

func (f loginForm) Validate(v *validator.Validate) error { return v.Struct(f) }

func (s *server) loginPage(ctx echo.Context) error {
	sc := s.scope(ctx)
	// best effort branding on the login screen
	_, _ = sc.tenant.FetchMeta(ctx.Request().Context(), false)

	data := shellData{Page: "Sign in"}
	if sc.tenant.Err != "" {
		data.Err = sc.tenant.Err
	}
	return s.render(ctx, data)
}

func (s *server) login(ctx echo.Context) error {
	sc := s.scope(ctx)

	var form loginForm
	if err := ctx.Bind(&form); err != nil {
		return errAuthenticationFailed
	}
	if err := form.Validate(s.deps.Validate); err != nil {
		return err
	}

	device := "portal@" + s.deps.Conf.Server.Host
	if _, err := sc.session.Login(ctx.Request().Context(), form.Identifier, form.Password, device); err != nil {
		if apiErr, ok := coreAPIError(err); ok && apiErr.StatusCode < http.StatusInternalServerError {
			return echo.NewHTTPError(http.StatusBadRequest, sc.session.Err)
		}
		return err
	}

	redirect := form.Redirect
	if redirect == "" {
		redirect = ctx.QueryParam("redirect")
	}
	// only same-site paths; anything else falls back to the dashboard
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = "/dashboard"
	}
	return ctx.Redirect(http.StatusFound, redirect)
}

func (s *server) logout(ctx echo.Context) error {
	sc := s.scope(ctx)
	sc.session.Logout(ctx.Request().Context())
	return ctx.Redirect(http.StatusFound, s.deps.Conf.Server.LoginPath)
}

func (s *server) logoutAll(ctx echo.Context) error {
	sc := s.scope(ctx)
	sc.session.LogoutAll(ctx.Request().Context())
	return ctx.Redirect(http.StatusFound, s.deps.Conf.Server.LoginPath)
}

func coreAPIError(err error) (*core.APIError, bool) {
	apiErr, ok := errors.Cause(err).(*core.APIError)
	return apiErr, ok
}
