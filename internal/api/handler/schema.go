package handler

import "encoding/json"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---

// Secrets may be sent as a JSON string or number; see secretText.
type registerRequest struct {
	Login  string          `json:"login"  validate:"required"`
	Secret json.RawMessage `json:"secret" swaggertype:"string"`
}

type loginRequest struct {
	Login  string          `json:"login"  validate:"required"`
	Secret json.RawMessage `json:"secret" swaggertype:"string"`
}

// Missing price and rating default to defaultPrice and defaultRating.
type createProductRequest struct {
	Name       string   `json:"name"        validate:"required"`
	Price      *float64 `json:"price"       validate:"omitempty,gte=0"`
	Rating     *float64 `json:"rating"`
	CategoryID int      `json:"category_id" validate:"gte=0"`
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type createCategoriesRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,required"`
}

// assignRequest selects the category either by id or by name; when both are
// given the name wins.
type assignRequest struct {
	CategoryID   int    `json:"category_id"   validate:"required_without=CategoryName"`
	CategoryName string `json:"category_name" validate:"required_without=CategoryID"`
	ProductIDs   []int  `json:"product_ids"   validate:"required,min=1,dive,gt=0"`
}

type addToCartRequest struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
}

// --- Responses ---

type userResponse struct {
	Login       string `json:"login"`
	BasketItems int    `json:"basket_items"`
}

type registerResponse struct {
	User                 userResponse `json:"user"`
	DefaultSecretApplied bool         `json:"default_secret_applied"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type productResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
	CategoryID *int    `json:"category_id,omitempty"`
}

type categoryResponse struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Products []productResponse `json:"products"`
}

type basketResponse struct {
	Items []productResponse `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}
