// Command inventory serves the shop and product directory API.
//
// @title                       Inventory Directory API
// @version                     1.0
// @description                 Shops, products and the accounts that own them.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/shopdirectory/inventory-system/internal/api"
	"github.com/shopdirectory/inventory-system/internal/api/handler"
	"github.com/shopdirectory/inventory-system/internal/core/domain"
	"github.com/shopdirectory/inventory-system/internal/core/ports"
	"github.com/shopdirectory/inventory-system/internal/core/service"
	"github.com/shopdirectory/inventory-system/internal/infrastructure/config"
	"github.com/shopdirectory/inventory-system/internal/infrastructure/crypto"
	"github.com/shopdirectory/inventory-system/internal/infrastructure/db/gormdb"
	"github.com/shopdirectory/inventory-system/internal/infrastructure/db/redis"
	"github.com/shopdirectory/inventory-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "inventory",
		Caller:  cfg.IsDevelopment(),
	})
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn().Err(envErr).Msg("could not load .env")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("inventory stopped with error")
	}
	log.Info().Msg("inventory stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := gormdb.Open(ctx, gormdb.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, log)
	if err != nil {
		return err
	}
	defer func() { _ = gormdb.Close(db) }()

	if err := gormdb.Migrate(ctx, db); err != nil {
		return err
	}

	readiness := map[string]handler.DependencyCheck{
		"database": func(ctx context.Context) error { return gormdb.Ping(ctx, db) },
	}

	// Without Redis the Idempotency-Key header is ignored.
	var idempotency ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		idempotency = redis.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
		readiness["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency keys enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set, Idempotency-Key header will be ignored")
	}

	tokens, err := service.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.JWTIssuer)
	if err != nil {
		return err
	}
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	userRepo := gormdb.NewUserRepository(db)
	shopRepo := gormdb.NewShopRepository(db)
	productRepo := gormdb.NewProductRepository(db)
	bulk := service.NewBulkDeleter(gormdb.NewUnitOfWork(db), log)

	users := service.NewUserService(userRepo, hasher, log)
	if err := service.Bootstrap(ctx, userRepo, users, []service.SeedAccount{
		{Username: cfg.Bootstrap.AdminUsername, Password: cfg.Bootstrap.AdminPassword, Role: domain.RoleAdmin},
		{Username: cfg.Bootstrap.ShopUsername, Password: cfg.Bootstrap.ShopPassword, Role: domain.RoleShop},
	}, log); err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		Auth:       service.NewAuthService(service.NewCredentialStore(userRepo, hasher), tokens, cfg.Auth.TokenTTL, log),
		Tokens:     tokens,
		Authorizer: service.NewAuthorizationGuard(service.NewOwnershipResolver(gormdb.NewOwnershipRepository(db))),
		Shops:      service.NewShopService(shopRepo, bulk, idempotency, log),
		Products:   service.NewProductService(productRepo, shopRepo, bulk, idempotency, log),
		Users:      users,
		Readiness:  readiness,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-serveErr:
		return err
	case <-stop.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
