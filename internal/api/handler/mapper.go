package handler

import (
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateShopInput(req createShopRequest, idempotencyKey string) ports.CreateShopInput {
	return ports.CreateShopInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		OpenHours:      req.OpenHours,
		DeliveryOption: domain.DeliveryOption(req.DeliveryOption),
		IdempotencyKey: idempotencyKey,
	}
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
	}
}

// --- Domain → Response ---

func toShopResponse(s *domain.Shop) shopResponse {
	return shopResponse{
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

func toShopResponses(shops []*domain.Shop) []shopResponse {
	out := make([]shopResponse, len(shops))
	for i, s := range shops {
		out[i] = toShopResponse(s)
	}
	return out
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
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

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
