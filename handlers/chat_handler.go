package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"wiskoro-bot/config"
	"wiskoro-bot/models"
	"wiskoro-bot/services"
)

// maxMessageLength bounds POST /chat input in runes.
const maxMessageLength = 500

// ChatHandler serves the chat and fact endpoints.
type ChatHandler struct {
	responder *services.Responder
	persona   config.Persona
}

// NewChatHandler creates the handler around a wired responder.
func NewChatHandler(responder *services.Responder, persona config.Persona) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		persona:   persona,
	}
}

// HandleChat processes POST /chat: validate, respond, map failures to
// status codes. This is the only place errors become HTTP statuses.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: h.persona.ValidationMessage,
		})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" || utf8.RuneCountInString(message) > maxMessageLength {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: h.persona.ValidationMessage,
		})
	}

	response, cached, err := h.responder.Respond(c.UserContext(), message)
	if err != nil {
		return h.failureResponse(c, err)
	}

	return c.JSON(models.ChatResponse{
		Response:  response,
		Cached:    cached,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFact processes GET /fact. It cannot fail: AI fact generation falls
// back to the static pool inside the responder.
func (h *ChatHandler) HandleFact(c *fiber.Ctx) error {
	fact := h.responder.RandomFact(c.UserContext())
	return c.JSON(fact)
}

// failureResponse maps each tagged failure variant to its status code and
// stylized detail message.
func (h *ChatHandler) failureResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(models.ErrorResponse{
			Detail: h.persona.TimeoutMessage,
		})
	case errors.Is(err, services.ErrServiceUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
			Detail: h.persona.UnavailableMessage,
		})
	case errors.Is(err, services.ErrInvalidCompletion):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Detail: h.persona.InvalidMessage,
		})
	default:
		slog.Error("Unexpected chat failure", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Detail: h.persona.UnexpectedMessage,
		})
	}
}
