package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type identityResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- Shops ---

type createShopRequest struct {
	Name           string   `json:"name"           validate:"required,max=200"`
	Address        string   `json:"address"        validate:"required,max=500"`
	Phone          string   `json:"phone"          validate:"required,max=50"`
	Latitude       *float64 `json:"latitude"       validate:"required,gte=-90,lte=90"`
	Longitude      *float64 `json:"longitude"      validate:"required,gte=-180,lte=180"`
	OpenHours      string   `json:"openHours"      validate:"required,max=200"`
	DeliveryOption string   `json:"deliveryOption" validate:"required,oneof=NO_DELIVERY IN_HOUSE_DRIVER THIRD_PARTY_PARTNER"`
}

type shopResponse struct {
	ID             int64     `json:"id"`
	OwnerID        int64     `json:"ownerId"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	OpenHours      string    `json:"openHours"`
	DeliveryOption string    `json:"deliveryOption"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// bulkDeleteRequest is the object form of a batch body; a bare array is
// accepted as well.
type bulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type bulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// --- Products ---

type productRequest struct {
	Name        string           `json:"name"        validate:"required,max=200"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price"       validate:"required"`
	Stock       *int             `json:"stock"       validate:"required,gte=0"`
	Category    string           `json:"category"    validate:"max=100"`
}

type productResponse struct {
	ID          int64           `json:"id"`
	ShopID      int64           `json:"shopId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
