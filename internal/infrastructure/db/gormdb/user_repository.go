package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := userFromDomain(user)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&userModel{}).Where("username = ?", m.Username).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return domain.ErrUserExists
		}
		return tx.Create(m).Error
	})
	switch {
	case errors.Is(err, domain.ErrUserExists), isUniqueViolation(err):
		return nil, fmt.Errorf("%w: %s", domain.ErrUserExists, user.Username)
	case err != nil:
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Where("username = ?", username).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Take(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*domain.User, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userModel{}).Where("id = ?", id).Update("password_hash", hash)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return tx.Take(&m, id).Error
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}
	return m.toDomain(), nil
}

// Delete refuses while the user owns shops. The row is locked first so a
// concurrent shop insert cannot slip in between the check and the delete.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m userModel
		if err := lockForUpdate(tx).Take(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		var owned int64
		if err := tx.Model(&shopModel{}).Where("owner_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return domain.ErrUserOwnsShops
		}
		return tx.Delete(&m).Error
	})
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, id)
	case errors.Is(err, domain.ErrUserOwnsShops), isForeignKeyViolation(err):
		return fmt.Errorf("%w: id %d", domain.ErrUserOwnsShops, id)
	case err != nil:
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
