package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// AuthService implements login.
type AuthService struct {
	credentials *CredentialStore
	tokens      ports.TokenIssuer
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(credentials *CredentialStore, tokens ports.TokenIssuer, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{credentials: credentials, tokens: tokens, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	identity, err := s.credentials.Verify(ctx, username, password)
	if err != nil {
		s.log.Info().Str("username", username).Msg("login rejected")
		return nil, err
	}

	token, err := s.tokens.Issue(identity, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", identity.UserID).Str("role", identity.Role.String()).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: identity}, nil
}
