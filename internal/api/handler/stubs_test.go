package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/shopdirectory/inventory-system/internal/api/middleware"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

var (
	shopOwner = domain.UserIdentity{UserID: 7, Username: "alice", Role: domain.RoleShop}
	admin     = domain.UserIdentity{UserID: 1, Username: "root", Role: domain.RoleAdmin}
)

// newContext builds an echo context with the validator installed and,
// when identity is non-zero, an authenticated caller.
func newContext(method, target string, body io.Reader, identity domain.UserIdentity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity.UserID != 0 {
		middleware.SetIdentity(c, identity)
	}
	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, username, password)
}

type stubShopService struct {
	registerFn   func(ctx context.Context, actor domain.UserIdentity, input ports.CreateShopInput) (*ports.ShopResult, error)
	getFn        func(ctx context.Context, id int64) (*domain.Shop, error)
	deleteManyFn func(ctx context.Context, actor domain.UserIdentity, ids []int64) error
	deleteFn     func(ctx context.Context, actor domain.UserIdentity, id int64) error
	shops        []*domain.Shop
}

func (s *stubShopService) Register(ctx context.Context, actor domain.UserIdentity, input ports.CreateShopInput) (*ports.ShopResult, error) {
	return s.registerFn(ctx, actor, input)
}

func (s *stubShopService) Get(ctx context.Context, id int64) (*domain.Shop, error) {
	return s.getFn(ctx, id)
}

func (s *stubShopService) ListMine(_ context.Context, actor domain.UserIdentity) ([]*domain.Shop, error) {
	var out []*domain.Shop
	for _, shop := range s.shops {
		if shop.OwnedBy(actor.UserID) {
			out = append(out, shop)
		}
	}
	return out, nil
}

func (s *stubShopService) ListAll(context.Context) ([]*domain.Shop, error) {
	return s.shops, nil
}

func (s *stubShopService) Delete(ctx context.Context, actor domain.UserIdentity, id int64) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubShopService) DeleteMany(ctx context.Context, actor domain.UserIdentity, ids []int64) error {
	return s.deleteManyFn(ctx, actor, ids)
}

type stubProductService struct {
	addFn    func(ctx context.Context, actor domain.UserIdentity, input ports.CreateProductInput) (*ports.ProductResult, error)
	updateFn func(ctx context.Context, actor domain.UserIdentity, id int64, input ports.ProductInput) (*domain.Product, error)
	listFn   func(ctx context.Context, shopID int64) ([]*domain.Product, error)
	deleted  []int64
}

func (s *stubProductService) Add(ctx context.Context, actor domain.UserIdentity, input ports.CreateProductInput) (*ports.ProductResult, error) {
	return s.addFn(ctx, actor, input)
}

func (s *stubProductService) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	return s.listFn(ctx, shopID)
}

func (s *stubProductService) Update(ctx context.Context, actor domain.UserIdentity, id int64, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubProductService) Delete(_ context.Context, _ domain.UserIdentity, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubProductService) DeleteMany(_ context.Context, _ domain.UserIdentity, ids []int64) error {
	s.deleted = append(s.deleted, ids...)
	return nil
}

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	deleteErr  error
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) List(context.Context) ([]*domain.User, error) { return nil, nil }

func (s *stubUserService) Get(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Username: "u", PasswordHash: "secret-hash", Role: domain.RoleShop}, nil
}

func (s *stubUserService) UpdatePassword(_ context.Context, id int64, _ string) (*domain.User, error) {
	return &domain.User{ID: id, Username: "u", Role: domain.RoleShop}, nil
}

func (s *stubUserService) Delete(context.Context, int64) error { return s.deleteErr }
