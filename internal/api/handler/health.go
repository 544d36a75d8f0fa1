package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// HealthHandler handles GET /health — liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. The catalog lives in memory, so
// readiness means its listings can be read.
type ReadinessHandler struct {
	catalog ports.CatalogService
	auth    ports.AuthService
}

func NewReadinessHandler(catalog ports.CatalogService, auth ports.AuthService) *ReadinessHandler {
	return &ReadinessHandler{catalog: catalog, auth: auth}
}

type readinessResponse struct {
	Status     string `json:"status"`
	Products   int    `json:"products"`
	Categories int    `json:"categories"`
	Users      int    `json:"users"`
	Error      string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "degraded", Error: err.Error()})
	}
	categories, err := h.catalog.ListCategories(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "degraded", Error: err.Error()})
	}
	users, err := h.auth.ListUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "degraded", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, readinessResponse{
		Status:     "ok",
		Products:   len(products),
		Categories: len(categories),
		Users:      len(users),
	})
}
