package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
)

// Serialize runs requests one at a time. The shop core is not safe for
// concurrent use, so every router shares a single lock across its routes.
func Serialize() echo.MiddlewareFunc {
	var mu sync.Mutex
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mu.Lock()
			defer mu.Unlock()
			return next(c)
		}
	}
}
