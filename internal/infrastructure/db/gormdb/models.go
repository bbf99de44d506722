package gormdb

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
)

type userModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:16;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

func userFromDomain(u *domain.User) *userModel {
	return &userModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type shopModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OwnerID        int64     `gorm:"not null;index"`
	Owner          userModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	Name           string    `gorm:"size:200;not null"`
	Address        string    `gorm:"size:500"`
	Phone          string    `gorm:"size:50"`
	Latitude       float64
	Longitude      float64
	OpenHours      string `gorm:"size:200"`
	DeliveryOption string `gorm:"size:32;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (shopModel) TableName() string { return "shops" }

func shopFromDomain(s *domain.Shop) *shopModel {
	return &shopModel{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		Name:           s.Name,
		Address:        s.Address,
		Phone:          s.Phone,
		Latitude:       s.Location.Lat,
		Longitude:      s.Location.Lng,
		OpenHours:      s.OpenHours,
		DeliveryOption: string(s.DeliveryOption),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *shopModel) toDomain() *domain.Shop {
	return &domain.Shop{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Name:           m.Name,
		Address:        m.Address,
		Phone:          m.Phone,
		Location:       domain.Location{Lat: m.Latitude, Lng: m.Longitude},
		OpenHours:      m.OpenHours,
		DeliveryOption: domain.DeliveryOption(m.DeliveryOption),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

type productModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	ShopID      int64           `gorm:"not null;index"`
	Shop        shopModel       `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"size:2000"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Category    string          `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productModel) TableName() string { return "products" }

func productFromDomain(p *domain.Product) *productModel {
	return &productModel{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *productModel) toDomain() *domain.Product {
	return &domain.Product{
		ID:          m.ID,
		ShopID:      m.ShopID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ownershipRow is the product -> shop -> owner join.
type ownershipRow struct {
	ProductID int64
	ShopID    int64
	OwnerID   int64
}
