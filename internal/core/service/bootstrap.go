package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// SeedAccount is an account created when the user table is empty.
type SeedAccount struct {
	Username string
	Password string
	Role     domain.Role
}

// Bootstrap creates the seed accounts on a fresh database. It does nothing
// once any user exists. Accounts with an empty username are skipped.
func Bootstrap(ctx context.Context, repo ports.UserRepository, users *UserService, seeds []SeedAccount, log zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("skipping bootstrap, users already present")
		return nil
	}

	for _, seed := range seeds {
		if seed.Username == "" {
			continue
		}
		if _, err := users.Register(ctx, ports.RegisterUserInput(seed)); err != nil {
			return fmt.Errorf("bootstrap %s: %w", seed.Username, err)
		}
		log.Info().Str("username", seed.Username).Str("role", seed.Role.String()).Msg("bootstrap account created")
	}
	return nil
}
