package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/metrics"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
	"github.com/shopdirectory/inventory-system/pkg/logger"
)

const identityKey = "identity"

// errUnauthorized is the only 401 a client ever sees from token checks.
var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")

// Auth verifies the bearer token and stores the resulting identity in the
// echo context. Every failure produces the same 401; the reason is logged
// and counted only.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c.Request().Context())

			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return errUnauthorized
			}

			identity, err := verifier.Verify(raw)
			if err != nil {
				reason := domain.FailureMalformed.String()
				var failure *domain.AuthFailure
				if errors.As(err, &failure) {
					reason = failure.Kind.String()
				}
				metrics.TokenVerificationsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Msg("token rejected")
				return errUnauthorized
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			SetIdentity(c, identity)

			scoped := log.With().Int64("user_id", identity.UserID).Str("role", identity.Role.String()).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context(), scoped)))

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SetIdentity stores the authenticated identity for downstream handlers.
func SetIdentity(c echo.Context, identity domain.UserIdentity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c echo.Context) (domain.UserIdentity, bool) {
	identity, ok := c.Get(identityKey).(domain.UserIdentity)
	return identity, ok
}
