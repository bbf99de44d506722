package domain

import (
	"errors"
	"fmt"
)

// Base classifications. The HTTP boundary maps each to one status code, so
// every error the core returns must wrap exactly one of these.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("access forbidden")
	ErrResourceNotFound = errors.New("resource not found")
	ErrBadRequest       = errors.New("bad request")
	ErrConflict         = errors.New("conflict")
)

// Authentication.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMalformed     = fmt.Errorf("%w: malformed token", ErrUnauthenticated)
	ErrTokenSignature     = fmt.Errorf("%w: invalid token signature", ErrUnauthenticated)
	ErrTokenExpired       = fmt.Errorf("%w: token expired", ErrUnauthenticated)
)

// Authorization denials.
var (
	ErrInsufficientRole = fmt.Errorf("%w: insufficient role", ErrForbidden)
	ErrNotOwner         = fmt.Errorf("%w: not the owner", ErrForbidden)
)

// Lookups.
var (
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrResourceNotFound)
	ErrShopNotFound    = fmt.Errorf("%w: shop", ErrResourceNotFound)
	ErrProductNotFound = fmt.Errorf("%w: product", ErrResourceNotFound)
)

var (
	ErrEmptyBatch      = fmt.Errorf("%w: id list cannot be empty", ErrBadRequest)
	ErrUserExists      = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrUserOwnsShops   = fmt.Errorf("%w: user still owns shops", ErrConflict)
	ErrRequestInFlight = fmt.Errorf("%w: request with this idempotency key is in progress", ErrConflict)
)
