package ports

import (
	"context"
	"time"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token domain.IssuedToken
	User  domain.UserIdentity
}

// AuthService authenticates users and mints bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// TokenIssuer signs identities into bearer tokens.
type TokenIssuer interface {
	Issue(identity domain.UserIdentity, ttl time.Duration) (domain.IssuedToken, error)
}

// TokenVerifier turns a raw bearer token back into an identity. Failures are
// always *domain.AuthFailure.
type TokenVerifier interface {
	Verify(raw string) (domain.UserIdentity, error)
}

// Authorizer decides whether identity may act under policy. A nil error
// means allow.
type Authorizer interface {
	Authorize(ctx context.Context, identity domain.UserIdentity, policy domain.Policy) error
}

// PasswordHasher is a one-way adaptive hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Compare returns nil when plaintext matches hash.
	Compare(hash, plaintext string) error
}
