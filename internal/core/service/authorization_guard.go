package service

import (
	"context"
	"fmt"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// OwnershipChecker is the part of OwnershipResolver the guard needs.
type OwnershipChecker interface {
	OwnerOf(ctx context.Context, shopID int64) (int64, error)
	ProductOwnerOf(ctx context.Context, productID int64) (int64, error)
}

// AuthorizationGuard enforces role policies first and ownership second.
type AuthorizationGuard struct {
	ownership OwnershipChecker
}

func NewAuthorizationGuard(ownership OwnershipChecker) *AuthorizationGuard {
	return &AuthorizationGuard{ownership: ownership}
}

// Authorize returns nil to allow. Denials wrap domain.ErrInsufficientRole,
// domain.ErrNotOwner or domain.ErrResourceNotFound.
func (g *AuthorizationGuard) Authorize(ctx context.Context, identity domain.UserIdentity, policy domain.Policy) error {
	if !identity.Role.Valid() || !policy.Admits(identity.Role) {
		return fmt.Errorf("%w: role %q", domain.ErrInsufficientRole, identity.Role)
	}
	if policy.Resource == nil {
		return nil
	}

	switch identity.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleShop:
		return g.checkOwnership(ctx, identity.UserID, *policy.Resource)
	default:
		return fmt.Errorf("%w: role %q", domain.ErrInsufficientRole, identity.Role)
	}
}

func (g *AuthorizationGuard) checkOwnership(ctx context.Context, userID int64, ref domain.ResourceRef) error {
	var (
		ownerID int64
		err     error
	)
	switch ref.Kind {
	case domain.ResourceShop:
		ownerID, err = g.ownership.OwnerOf(ctx, ref.ID)
	case domain.ResourceProduct:
		ownerID, err = g.ownership.ProductOwnerOf(ctx, ref.ID)
	default:
		return fmt.Errorf("%w: unsupported resource kind %q", domain.ErrForbidden, ref.Kind)
	}
	if err != nil {
		return err
	}
	if ownerID != userID {
		return fmt.Errorf("%w: %s %d", domain.ErrNotOwner, ref.Kind, ref.ID)
	}
	return nil
}
