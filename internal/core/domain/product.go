package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product belongs to exactly one shop. ShopID is immutable; the effective
// owner is always the parent shop's OwnerID and is resolved per request.
type Product struct {
	ID          int64           `json:"id"`
	ShopID      int64           `json:"shopId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductOwnership is a product joined with the owner of its parent shop.
type ProductOwnership struct {
	ProductID int64
	ShopID    int64
	OwnerID   int64
}
