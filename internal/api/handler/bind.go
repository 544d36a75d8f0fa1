package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/core/domain"
)

// bindAndValidate decodes the request body into req and validates it. A JSON
// value of the wrong kind becomes a domain type mismatch; any other decode
// failure is a 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return domain.NewTypeMismatch(ute.Field, ute.Type.String(), ute.Value)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}

// intParam reads a path parameter that must be an integer.
func intParam(c echo.Context, name string) (int, error) {
	raw := c.Param(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewTypeMismatch(name, "integer", strconv.Quote(raw))
	}
	return v, nil
}
