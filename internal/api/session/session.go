// Package session keeps the logged-in username and one-shot flash messages in
// a signed cookie, using the echo-contrib session middleware.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	CookieName  = "flex_session"
	usernameKey = "username"
)

// NewStore returns a cookie store whose values are HMAC-signed with secret.
func NewStore(secret string, maxAge time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int(maxAge.Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Middleware installs the store on every request.
func Middleware(store sessions.Store) echo.MiddlewareFunc {
	return session.Middleware(store)
}

// get returns the request's session. A tampered or expired cookie yields a
// fresh, empty session rather than an error.
func get(c echo.Context) (*sessions.Session, error) {
	sess, err := session.Get(CookieName, c)
	if sess == nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return sess, nil
}

// Username returns the logged-in username, if any.
func Username(c echo.Context) (string, bool) {
	sess, err := get(c)
	if err != nil {
		return "", false
	}
	name, ok := sess.Values[usernameKey].(string)
	return name, ok && name != ""
}

// SignIn binds the browser to username.
func SignIn(c echo.Context, username string) error {
	sess, err := get(c)
	if err != nil {
		return err
	}
	sess.Values[usernameKey] = username
	return sess.Save(c.Request(), c.Response())
}

// SignOut forgets the username and queues flash for the next page.
func SignOut(c echo.Context, flash string) error {
	sess, err := get(c)
	if err != nil {
		return err
	}
	delete(sess.Values, usernameKey)
	if flash != "" {
		sess.AddFlash(flash)
	}
	return sess.Save(c.Request(), c.Response())
}

// AddFlash queues a message to be shown on the next rendered page.
func AddFlash(c echo.Context, msg string) error {
	sess, err := get(c)
	if err != nil {
		return err
	}
	sess.AddFlash(msg)
	return sess.Save(c.Request(), c.Response())
}

// Flashes consumes the queued messages.
func Flashes(c echo.Context) []string {
	sess, err := get(c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("session: save after reading flashes: %v", err)
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
