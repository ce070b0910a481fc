package handlers

import (
	"crypto/subtle"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/models"
)

// AuthHandler gates the API behind the shared team password. A successful
// unlock returns an opaque token that the client sends back in the
// X-Access-Token header. Tokens live in memory only; a restart just means
// unlocking again.
type AuthHandler struct {
	accessPassword string
	mu             sync.RWMutex
	tokens         map[string]bool
}

func NewAuthHandler(accessPassword string) *AuthHandler {
	return &AuthHandler{
		accessPassword: accessPassword,
		tokens:         make(map[string]bool),
	}
}

func (h *AuthHandler) HandleUnlock(c *fiber.Ctx) error {
	var req models.UnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.accessPassword)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "incorrect password",
		})
	}

	token := uuid.New().String()
	h.mu.Lock()
	h.tokens[token] = true
	h.mu.Unlock()

	return c.Status(fiber.StatusOK).JSON(models.UnlockResponse{Token: token})
}

// Middleware rejects requests without a valid unlock token. When no password
// is configured the gate is disabled, which keeps local development simple.
func (h *AuthHandler) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.accessPassword == "" {
			return c.Next()
		}

		token := c.Get("X-Access-Token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing access token, unlock first",
			})
		}

		h.mu.RLock()
		valid := h.tokens[token]
		h.mu.RUnlock()

		if !valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid access token",
			})
		}

		return c.Next()
	}
}
