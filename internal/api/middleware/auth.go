package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-buddy/internal/api/session"
)

// UsernameKey is the echo.Context key holding the authenticated username.
const UsernameKey = "username"

// TokenParser validates a bearer token and returns its subject.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// Session injects the username stored in the session cookie, if any.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if name, ok := session.Username(c); ok {
				c.Set(UsernameKey, name)
			}
			return next(c)
		}
	}
}

// Bearer accepts an Authorization header as an alternative to the session
// cookie. Requests without the header pass through untouched; a malformed or
// invalid token is rejected with the same body as an anonymous request.
func Bearer(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return UnauthorizedJSON(c)
			}

			username, err := parser.ParseToken(strings.TrimSpace(parts[1]))
			if err != nil {
				return UnauthorizedJSON(c)
			}

			c.Set(UsernameKey, username)
			return next(c)
		}
	}
}

// RequireUser calls deny instead of next when no user was identified.
func RequireUser(deny echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if name, _ := c.Get(UsernameKey).(string); name == "" {
				return deny(c)
			}
			return next(c)
		}
	}
}

// GuestOnly sends authenticated users to the chat page.
func GuestOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if name, _ := c.Get(UsernameKey).(string); name != "" {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

// RedirectToLogin is the deny handler for pages.
func RedirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

// UnauthorizedJSON is the deny handler for the chat API.
func UnauthorizedJSON(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"response": "Unauthorized"})
}
