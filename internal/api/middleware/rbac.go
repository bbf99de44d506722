package middleware

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/metrics"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
	"github.com/shopdirectory/inventory-system/pkg/logger"
)

// RequireRoles admits identities whose role is listed. It must run after Auth.
func RequireRoles(authz ports.Authorizer, roles ...domain.Role) echo.MiddlewareFunc {
	policy := domain.RoleOnly(roles...)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authorize(c, authz, policy, "none"); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// RequireOwnership admits listed roles that also own the resource whose id is
// in the path parameter param. Administrators skip the ownership part when
// their role is listed.
func RequireOwnership(authz ports.Authorizer, kind domain.ResourceKind, param string, roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := PathID(c, param)
			if err != nil {
				return err
			}
			policy := domain.RoleAndOwnership(domain.ResourceRef{Kind: kind, ID: id}, roles...)
			if err := authorize(c, authz, policy, string(kind)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

func authorize(c echo.Context, authz ports.Authorizer, policy domain.Policy, resource string) error {
	identity, ok := IdentityFrom(c)
	if !ok {
		return errUnauthorized
	}

	err := authz.Authorize(c.Request().Context(), identity, policy)
	decision := metrics.Outcome(err, "allow")
	metrics.AuthzDecisionsTotal.WithLabelValues(resource, decision).Inc()
	if err != nil {
		log := logger.FromContext(c.Request().Context())
		log.Info().
			Str("decision", decision).
			Str("path", c.Path()).
			Msg("request denied")
	}
	return err
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrBadRequest, param, c.Param(param))
	}
	return id, nil
}
