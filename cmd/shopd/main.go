package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/api"
	"github.com/99minutos/shop-catalog/internal/core/ports"
	"github.com/99minutos/shop-catalog/internal/core/service"
	"github.com/99minutos/shop-catalog/internal/infrastructure/memory"
	"github.com/99minutos/shop-catalog/internal/pkg/config"
	"github.com/99minutos/shop-catalog/pkg/logger"
)

const appName = "shopd"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: appName,
	})
	if cfg.JWTSecretGenerated {
		log.Warn().Msg("JWT_SECRET not set, using a random key; tokens will not survive a restart")
	}

	shop := service.NewShop(
		memory.NewAllocator(),
		memory.NewProductRepository(),
		memory.NewCategoryRepository(),
		memory.NewUserRepository(),
		secretHasher(cfg),
		log.With().Str("component", "shop").Logger(),
	)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.Auth.TokenTTL)

	e := api.NewRouter(api.Services{Auth: shop, Catalog: shop, Cart: shop}, tokens, cfg.JWTSecret, log)

	go startServer(e, ":"+cfg.Port)

	waitForShutdown(e)
	log.Info().Msg("shutting down")
}

func secretHasher(cfg *config.Config) ports.SecretHasher {
	if cfg.Auth.SecretStrategy == config.SecretStrategyBcrypt {
		return service.BcryptSecrets{Cost: cfg.Auth.BcryptCost}
	}
	return service.PlainSecrets{}
}

func startServer(e *echo.Echo, addr string) {
	log := logger.Get()
	log.Info().Str("addr", addr).Msg("starting the server")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func waitForShutdown(e *echo.Echo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
