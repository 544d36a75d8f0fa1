package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/shop-catalog/internal/api/docs"
	"github.com/99minutos/shop-catalog/internal/api/handler"
	"github.com/99minutos/shop-catalog/internal/api/middleware"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// Services groups the core ports the router exposes. A single *service.Shop
// satisfies all three.
type Services struct {
	Auth    ports.AuthService
	Catalog ports.CatalogService
	Cart    ports.CartService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, tokens handler.TokenIssuer, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(log))
	e.Use(middleware.Serialize())

	authMiddleware := middleware.Auth(jwtSecret)
	sessionMiddleware := middleware.Session(svc.Auth)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, tokens)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware, sessionMiddleware)

	v1 := e.Group("/v1")

	// --- Catalog routes ---
	productHandler := handler.NewProductHandler(svc.Catalog)
	v1.GET("/products", productHandler.List)
	v1.POST("/products", productHandler.Create)
	v1.GET("/products/:id", productHandler.Get)

	categoryHandler := handler.NewCategoryHandler(svc.Catalog)
	v1.GET("/categories", categoryHandler.List)
	v1.POST("/categories", categoryHandler.Create)
	v1.POST("/categories/batch", categoryHandler.CreateBatch)
	v1.GET("/categories/search", categoryHandler.Search)
	v1.POST("/categories/assign", categoryHandler.Assign)
	v1.GET("/categories/:id", categoryHandler.Get)

	// --- Cart routes (current user only) ---
	cartHandler := handler.NewCartHandler(svc.Cart, svc.Catalog)
	cart := v1.Group("/cart", authMiddleware, sessionMiddleware)
	cart.GET("", cartHandler.Get)
	cart.POST("/items", cartHandler.AddItem)
	cart.GET("/total", cartHandler.Total)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(svc.Catalog, svc.Auth)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – can the catalog be read?

	// --- Operational endpoints ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
