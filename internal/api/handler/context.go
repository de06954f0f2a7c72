package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-buddy/internal/api/middleware"
)

// currentUser returns the username injected by the Session or Bearer
// middleware, or "" for anonymous requests.
func currentUser(c echo.Context) string {
	name, _ := c.Get(middleware.UsernameKey).(string)
	return name
}
