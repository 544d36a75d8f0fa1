package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/api/metrics"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// CartHandler exposes the current user's basket.
type CartHandler struct {
	cart    ports.CartService
	catalog ports.CatalogService
}

func NewCartHandler(cart ports.CartService, catalog ports.CatalogService) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// Get handles GET /v1/cart.
//
// @Summary      Current basket
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  basketResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	b, err := h.cart.Basket(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBasketResponse(b))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a product to the basket
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Product id"
// @Success      201   {object}  basketResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.catalog.FindProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if err := h.cart.AddToCart(ctx, p); err != nil {
		return err
	}
	metrics.CartItemsAddedTotal.Inc()

	b, err := h.cart.Basket(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBasketResponse(b))
}

// Total handles GET /v1/cart/total.
//
// @Summary      Order total for the current basket
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  totalResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart/total [get]
func (h *CartHandler) Total(c echo.Context) error {
	total, err := h.cart.ComputeOrderTotal(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.OrderTotal.Observe(total)
	return c.JSON(http.StatusOK, totalResponse{Total: total})
}
