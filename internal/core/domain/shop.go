package domain

import (
	"fmt"
	"time"
)

// DeliveryOption describes how a shop gets goods to its customers.
type DeliveryOption string

const (
	DeliveryNone       DeliveryOption = "NO_DELIVERY"
	DeliveryInHouse    DeliveryOption = "IN_HOUSE_DRIVER"
	DeliveryThirdParty DeliveryOption = "THIRD_PARTY_PARTNER"
)

// ParseDeliveryOption validates a raw delivery option.
func ParseDeliveryOption(s string) (DeliveryOption, error) {
	switch d := DeliveryOption(s); d {
	case DeliveryNone, DeliveryInHouse, DeliveryThirdParty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown delivery option %q", ErrBadRequest, s)
	}
}

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Shop is a storefront registered by a shop owner. OwnerID never changes
// after creation.
type Shop struct {
	ID             int64          `json:"id"`
	OwnerID        int64          `json:"ownerId"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Phone          string         `json:"phone"`
	Location       Location       `json:"location"`
	OpenHours      string         `json:"openHours"`
	DeliveryOption DeliveryOption `json:"deliveryOption"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// OwnedBy reports whether userID owns the shop.
func (s *Shop) OwnedBy(userID int64) bool { return s.OwnerID == userID }
