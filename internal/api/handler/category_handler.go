package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/api/metrics"
	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// CategoryHandler handles HTTP requests for categories and assignments.
type CategoryHandler struct {
	service ports.CatalogService
}

func NewCategoryHandler(service ports.CatalogService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /v1/categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  categoryResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cat, err := h.service.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	metrics.CategoriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCategoryResponse(cat))
}

// CreateBatch handles POST /v1/categories/batch.
//
// @Summary      Create several categories at once
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoriesRequest  true  "Category names, in id order"
// @Success      201   {array}   categoryResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/categories/batch [post]
func (h *CategoryHandler) CreateBatch(c echo.Context) error {
	var req createCategoriesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cats, err := h.service.CreateCategories(c.Request().Context(), req.Names...)
	if err != nil {
		return err
	}

	metrics.CategoriesCreatedTotal.Add(float64(len(cats)))
	out := make([]categoryResponse, len(cats))
	for i, cat := range cats {
		out[i] = toCategoryResponse(cat)
	}
	return c.JSON(http.StatusCreated, out)
}

// List handles GET /v1/categories. Each category lists its products.
//
// @Summary      List categories with their products
// @Tags         categories
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	cats, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, len(cats))
	for i, cat := range cats {
		out[i] = toCategoryResponse(cat)
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	return h.find(c, domain.CategoryByID(id))
}

// Search handles GET /v1/categories/search?name=.
//
// @Summary      Find the first category with a name
// @Tags         categories
// @Produce      json
// @Param        name  query     string  true  "Exact category name"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/categories/search [get]
func (h *CategoryHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name query parameter is required")
	}
	return h.find(c, domain.CategoryByName(name))
}

func (h *CategoryHandler) find(c echo.Context, sel domain.CategorySelector) error {
	cat, err := h.service.FindCategory(c.Request().Context(), sel)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}

// Assign handles POST /v1/categories/assign. All product ids are resolved and
// the category is looked up before anything is assigned.
//
// @Summary      Assign products to a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      assignRequest  true  "Category selector and product ids"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/categories/assign [post]
func (h *CategoryHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	products := make([]*domain.Product, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		p, err := h.service.FindProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("product %d: %w", id, err)
		}
		products = append(products, p)
	}

	sel := domain.CategoryByID(req.CategoryID)
	if req.CategoryName != "" {
		sel = domain.CategoryByName(req.CategoryName)
	}

	cat, err := h.service.AssignToCategory(ctx, sel, products...)
	if err != nil {
		return err
	}

	metrics.ProductsAssignedTotal.Add(float64(len(products)))
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}
