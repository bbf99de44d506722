package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Registers the generated OpenAPI document with swag.
	_ "github.com/shopdirectory/inventory-system/docs"
	"github.com/shopdirectory/inventory-system/internal/api/handler"
	"github.com/shopdirectory/inventory-system/internal/api/middleware"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
)

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Auth       ports.AuthService
	Tokens     ports.TokenVerifier
	Authorizer ports.Authorizer
	Shops      ports.ShopService
	Products   ports.ProductService
	Users      ports.UserService
	// Readiness lists the dependency probes behind /health/ready.
	Readiness map[string]handler.DependencyCheck
	// Registerer receives the HTTP request metrics. Defaults to the
	// process-wide Prometheus registry.
	Registerer prometheus.Registerer
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestContext(deps.Logger))
	e.Use(middleware.RequestLogger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "inventory",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(deps.Auth)
	shopHandler := handler.NewShopHandler(deps.Shops)
	productHandler := handler.NewProductHandler(deps.Products)
	userHandler := handler.NewUserHandler(deps.Users)

	authn := middleware.Auth(deps.Tokens)
	roles := func(r ...domain.Role) echo.MiddlewareFunc {
		return middleware.RequireRoles(deps.Authorizer, r...)
	}
	owns := func(kind domain.ResourceKind, param string, r ...domain.Role) echo.MiddlewareFunc {
		return middleware.RequireOwnership(deps.Authorizer, kind, param, r...)
	}

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authn)

	// --- Shops ---
	// /shops/bulk and /shops/mine are static segments and win over /shops/:id.
	shops := v1.Group("/shops", authn)
	shops.POST("", shopHandler.Create, roles(domain.RoleShop))
	shops.GET("", shopHandler.List, roles(domain.RoleAdmin))
	shops.GET("/mine", shopHandler.ListMine, roles(domain.RoleShop))
	shops.DELETE("/bulk", shopHandler.DeleteMany, roles(domain.RoleShop, domain.RoleAdmin))
	shops.GET("/:id", shopHandler.Get, roles(domain.RoleShop, domain.RoleAdmin))
	shops.DELETE("/:id", shopHandler.Delete, owns(domain.ResourceShop, "id", domain.RoleShop, domain.RoleAdmin))

	// --- Products ---
	shops.POST("/:shopId/products", productHandler.Create, owns(domain.ResourceShop, "shopId", domain.RoleShop))
	shops.GET("/:shopId/products", productHandler.ListByShop, roles(domain.RoleShop, domain.RoleAdmin))

	products := v1.Group("/products", authn)
	products.DELETE("/bulk", productHandler.DeleteMany, roles(domain.RoleShop))
	products.PUT("/:id", productHandler.Update, owns(domain.ResourceProduct, "id", domain.RoleShop))
	products.DELETE("/:id", productHandler.Delete, owns(domain.ResourceProduct, "id", domain.RoleShop))

	// --- Users ---
	users := v1.Group("/users", authn, roles(domain.RoleAdmin))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id/password", userHandler.UpdatePassword)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
