package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/api/metrics"
	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// TokenIssuer signs a session token for a freshly authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService ports.AuthService
	tokens      TokenIssuer
}

func NewAuthHandler(authService ports.AuthService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// Register creates a new user. A secret that is missing, or neither a string
// nor a number, is replaced by the default one and reported in the response.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Login and optional secret"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.RegisterUser(c.Request().Context(), req.Login, secretText(req.Secret))
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(strconv.FormatBool(res.DefaultSecretApplied)).Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		User:                 toUserResponse(res.User),
		DefaultSecretApplied: res.DefaultSecretApplied,
	})
}

// Login authenticates a user, makes them the current user and returns a
// session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.authService.Authenticate(ctx, req.Login, secretText(req.Secret)); err != nil {
		var status int
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.AuthAttemptsTotal.WithLabelValues("user_not_found").Inc()
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.AuthAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			status = http.StatusUnauthorized
		default:
			return err
		}
		return c.JSON(status, errorResponse{Error: err.Error()})
	}
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

	user, err := h.authService.CurrentUser(ctx)
	if err != nil {
		return err
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

// Me returns the current user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.authService.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
