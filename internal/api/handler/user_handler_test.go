package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

func TestUserHandler_Create_ParsesRole(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
			if in.Role != domain.RoleAdmin || in.Username != "carol" {
				t.Fatalf("unexpected input %+v", in)
			}
			return &domain.User{ID: 4, Username: in.Username, PasswordHash: "h", Role: in.Role}, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/users", strings.NewReader(`{"username":"carol","password":"secret1","role":"admin"}`), admin)
	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"h"`) {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_Create_UnknownRole(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	c, _ := newContext(http.MethodPost, "/users", strings.NewReader(`{"username":"carol","password":"secret1","role":"OWNER"}`), admin)
	if err := NewUserHandler(stub).Create(c); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestUserHandler_Get_HidesHash(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/users/4", nil, admin)
	withParam(c, "id", "4")
	if err := NewUserHandler(&stubUserService{}).Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_UpdatePassword_TooShort(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/users/4/password", strings.NewReader(`{"password":"abc"}`), admin)
	withParam(c, "id", "4")
	if err := NewUserHandler(&stubUserService{}).UpdatePassword(c); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestUserHandler_Delete_OwnsShops(t *testing.T) {
	c, _ := newContext(http.MethodDelete, "/users/4", nil, admin)
	withParam(c, "id", "4")
	err := NewUserHandler(&stubUserService{deleteErr: domain.ErrUserOwnsShops}).Delete(c)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
