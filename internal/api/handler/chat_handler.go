package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-buddy/internal/api/view"
	"github.com/flexfit/fitness-buddy/internal/core/domain"
	"github.com/flexfit/fitness-buddy/internal/core/ports"
)

type ChatHandler struct {
	chat    ports.ChatService
	persona domain.Persona
}

func NewChatHandler(chat ports.ChatService, persona domain.Persona) *ChatHandler {
	return &ChatHandler{chat: chat, persona: persona}
}

// Home handles GET / for signed-in users.
func (h *ChatHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, view.Home, view.Page{
		Persona:  h.persona,
		Username: currentUser(c),
	})
}

// Ask answers one chat message.
//
// @Summary      Ask the coach
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      askRequest  true  "Question"
// @Success      200   {object}  askResponse
// @Failure      400   {object}  askResponse
// @Failure      401   {object}  askResponse
// @Failure      500   {object}  askResponse
// @Router       /ask [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, askResponse{Response: msgInvalidPayload})
	}

	text, err := h.chat.GenerateResponse(c.Request().Context(), req.Question)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, askResponse{Response: "Error: " + err.Error()})
	}
	return c.JSON(http.StatusOK, askResponse{Response: text})
}
