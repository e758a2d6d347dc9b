package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worknest/workforce-api/internal/api/middleware"
	"github.com/worknest/workforce-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// A missing or empty principal means the middleware did not run (or the
// token resolved to nothing), so the request is rejected before any
// service call.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || p.ID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
