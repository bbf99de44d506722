package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

const minPasswordLen = 6

type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

// Register creates an account with a bcrypt-hashed password. The role is
// fixed from here on.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrBadRequest)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrBadRequest, input.Role)
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to register user")
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role.String()).Msg("user registered")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdatePassword(ctx context.Context, id int64, password string) (*domain.User, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.UpdatePasswordHash(ctx, id, hash)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", id).Msg("password updated")
	return user, nil
}

// Delete removes an account that owns no shops.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func checkPassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrBadRequest, minPasswordLen)
	}
	return nil
}
