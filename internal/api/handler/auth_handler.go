package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/metrics"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.LoginAttemptsTotal.WithLabelValues(metrics.Outcome(err, "success")).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token.Raw,
		TokenType: "Bearer",
		UserID:    result.User.UserID,
		Username:  result.User.Username,
		Role:      result.User.Role.String(),
		ExpiresAt: result.Token.ExpiresAt,
	})
}

// Me echoes the identity carried by the bearer token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role.String(),
	})
}
