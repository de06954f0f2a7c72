package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flexfit/fitness-buddy/internal/api/session"
	"github.com/flexfit/fitness-buddy/internal/api/view"
	"github.com/flexfit/fitness-buddy/internal/core/domain"
	"github.com/flexfit/fitness-buddy/internal/core/ports"
)

const (
	msgInvalidLogin   = "Invalid username or password"
	msgMissingFields  = "Please fill out all fields."
	msgUsernameTaken  = "Username already taken."
	msgRegistered     = "Registration successful! Please log in."
	msgLoggedOut      = "You have been logged out."
	msgInvalidPayload = "invalid payload"
)

type AuthHandler struct {
	authService ports.AuthService
	persona     domain.Persona
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, persona domain.Persona, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, persona: persona, log: log}
}

func (h *AuthHandler) render(c echo.Context, page string, messages ...string) error {
	return c.Render(http.StatusOK, page, view.Page{
		Persona:  h.persona,
		Messages: append(session.Flashes(c), messages...),
	})
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.render(c, view.Login)
}

// Login handles POST /login. A valid pair signs the browser in and redirects
// to the chat page; anything else re-renders the form with an error.
func (h *AuthHandler) Login(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, view.Login, msgInvalidLogin)
	}

	user, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.render(c, view.Login, msgInvalidLogin)
		}
		return err
	}

	if err := session.SignIn(c, user.Username); err != nil {
		return err
	}
	h.log.Info().Str("username", user.Username).Msg("user signed in")
	return c.Redirect(http.StatusFound, "/")
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return h.render(c, view.Register)
}

// Register handles POST /register. Success does not sign the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form credentialsForm
	if err := c.Bind(&form); err != nil {
		return h.render(c, view.Register, msgMissingFields)
	}
	form.Username = strings.TrimSpace(form.Username)
	form.Password = strings.TrimSpace(form.Password)
	if err := c.Validate(&form); err != nil {
		return h.render(c, view.Register, msgMissingFields)
	}

	_, err := h.authService.Register(c.Request().Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return h.render(c, view.Register, msgUsernameTaken)
	case errors.Is(err, domain.ErrValidation):
		return h.render(c, view.Register, msgMissingFields)
	case err != nil:
		return err
	}

	if err := session.AddFlash(c, msgRegistered); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	if name := currentUser(c); name != "" {
		h.log.Info().Str("username", name).Msg("user signed out")
	}
	if err := session.SignOut(c, msgLoggedOut); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

// Token exchanges credentials for a bearer token accepted by POST /ask.
//
// @Summary      Issue an API token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	tok, err := h.authService.IssueToken(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: tok.Value, ExpiresAt: tok.ExpiresAt})
}
