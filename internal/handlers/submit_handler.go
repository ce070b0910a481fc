package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/models"
	"trackrecord/cv-rater/internal/services"
)

type SubmitHandler struct {
	raterService services.RaterService
}

func NewSubmitHandler(raterService services.RaterService) *SubmitHandler {
	return &SubmitHandler{raterService: raterService}
}

// HandleSubmit takes the consultant's ratings, combines them with the stored
// model ratings, and appends the record to the shared spreadsheet.
func (h *SubmitHandler) HandleSubmit(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	breakdown, err := h.raterService.SubmitSession(c.UserContext(), sessionID, req.Ratings)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrAlreadySubmitted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrSessionNotRated):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "session is not ready for submission, model scoring has not completed",
			})
		case errors.Is(err, services.ErrPersistFailed):
			// The score was computed but the spreadsheet write failed. The
			// session stays rated so the client can retry the submit.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Evaluation submitted successfully",
		"breakdown":      breakdown,
		"benchmark_note": benchmarkNote(breakdown),
	})
}
