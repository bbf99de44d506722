package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

const minSigningKeyLen = 32

// ErrWeakSigningKey is returned by NewTokenService for short HMAC keys.
var ErrWeakSigningKey = fmt.Errorf("token signing key must be at least %d bytes", minSigningKeyLen)

// tokenClaims is the signed payload. userId is decoded straight into an int64
// so ids above 2^53 survive the round trip.
type tokenClaims struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens. It holds no mutable
// state after construction and is safe for concurrent use.
type TokenService struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(key []byte, issuer string, opts ...TokenOption) (*TokenService, error) {
	if len(key) < minSigningKeyLen {
		return nil, ErrWeakSigningKey
	}
	s := &TokenService{key: bytes.Clone(key), issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs identity into a token valid for ttl from now. A non-positive
// ttl yields a token that is already expired.
func (s *TokenService) Issue(identity domain.UserIdentity, ttl time.Duration) (domain.IssuedToken, error) {
	if identity.UserID <= 0 || !identity.Role.Valid() || identity.Username == "" {
		return domain.IssuedToken{}, fmt.Errorf("issue token: %w: incomplete identity", domain.ErrBadRequest)
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := tokenClaims{
		UserID: identity.UserID,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return domain.IssuedToken{}, fmt.Errorf("issue token: %w", err)
	}
	return domain.IssuedToken{Raw: raw, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, then expiry, then the identity claims. It never
// panics; every failure is a *domain.AuthFailure.
func (s *TokenService) Verify(raw string) (identity domain.UserIdentity, err error) {
	defer func() {
		if r := recover(); r != nil {
			identity = domain.UserIdentity{}
			err = &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: fmt.Errorf("panic while parsing: %v", r)}
		}
	}()

	if raw == "" {
		return domain.UserIdentity{}, &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: errors.New("empty token")}
	}

	var claims tokenClaims
	_, err = s.parser().ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return domain.UserIdentity{}, s.classify(raw, err)
	}

	switch {
	case claims.UserID <= 0:
		return domain.UserIdentity{}, &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: errors.New("missing userId claim")}
	case !claims.Role.Valid():
		return domain.UserIdentity{}, &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: fmt.Errorf("unknown role %q", claims.Role)}
	case claims.Subject == "":
		return domain.UserIdentity{}, &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: errors.New("missing sub claim")}
	}

	return domain.UserIdentity{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}

func (s *TokenService) parser() *jwt.Parser {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	return jwt.NewParser(opts...)
}

// classify maps a jwt error onto the three failure kinds. The library checks
// the signature before any claim, so a tampered expired token is reported as
// a signature failure.
func (s *TokenService) classify(raw string, err error) *domain.AuthFailure {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &domain.AuthFailure{Kind: domain.FailureSignatureInvalid, Cause: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return &domain.AuthFailure{Kind: domain.FailureExpired, Cause: err}
	case errors.Is(err, jwt.ErrTokenMalformed) && onlySignatureUndecodable(raw):
		return &domain.AuthFailure{Kind: domain.FailureSignatureInvalid, Cause: err}
	default:
		return &domain.AuthFailure{Kind: domain.FailureMalformed, Cause: err}
	}
}

// onlySignatureUndecodable reports whether header and payload decode cleanly
// while the third segment does not, which makes the signature the broken part.
func onlySignatureUndecodable(raw string) bool {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return false
	}
	enc := base64.RawURLEncoding.Strict()

	var header map[string]any
	var claims tokenClaims
	for i, dst := range []any{&header, &claims} {
		b, err := enc.DecodeString(parts[i])
		if err != nil {
			return false
		}
		if err := json.Unmarshal(b, dst); err != nil {
			return false
		}
	}
	_, err := enc.DecodeString(parts[2])
	return err != nil
}
