package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadinessHandler_Counts(t *testing.T) {
	catalog := &stubCatalogService{
		listProductsFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{mustProduct(t, 1, "Milk", 35)}, nil
		},
		listCategoriesFn: func(ctx context.Context) ([]*domain.Category, error) {
			return []*domain.Category{domain.NewCategory(1, "Dairy"), domain.NewCategory(2, "Bakery")}, nil
		},
	}
	auth := &stubAuthService{
		listFn: func(ctx context.Context) ([]*domain.User, error) { return nil, nil },
	}

	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := NewReadinessHandler(catalog, auth).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.Products != 1 || resp.Categories != 2 || resp.Users != 0 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReadinessHandler_Degraded(t *testing.T) {
	catalog := &stubCatalogService{
		listProductsFn: func(ctx context.Context) ([]*domain.Product, error) {
			return nil, errors.New("boom")
		},
	}

	c, rec := newJSONContext(http.MethodGet, "/health/ready", "")
	if err := NewReadinessHandler(catalog, &stubAuthService{}).Readiness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
