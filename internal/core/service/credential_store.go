package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// CredentialStore checks a username/password pair against stored hashes.
type CredentialStore struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	// dummyHash is compared against for unknown usernames so that missing and
	// existing users cost the same.
	dummyHash func() string
}

func NewCredentialStore(users ports.UserRepository, hasher ports.PasswordHasher) *CredentialStore {
	return &CredentialStore{
		users:  users,
		hasher: hasher,
		dummyHash: sync.OnceValue(func() string {
			h, _ := hasher.Hash("timing-equaliser")
			return h
		}),
	}
}

// Verify returns the identity for valid credentials. Unknown users and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *CredentialStore) Verify(ctx context.Context, username, plaintext string) (domain.UserIdentity, error) {
	if username == "" || plaintext == "" {
		return domain.UserIdentity{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Compare(s.dummyHash(), plaintext)
			return domain.UserIdentity{}, domain.ErrInvalidCredentials
		}
		return domain.UserIdentity{}, fmt.Errorf("verify credentials: %w", err)
	}

	if s.hasher.Compare(user.PasswordHash, plaintext) != nil {
		return domain.UserIdentity{}, domain.ErrInvalidCredentials
	}
	return user.Identity(), nil
}
