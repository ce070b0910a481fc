package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/models"
	"trackrecord/cv-rater/internal/rating"
	"trackrecord/cv-rater/internal/repositories"
)

type SessionHandler struct {
	sessionRepo repositories.SessionRepository
	composer    *rating.Composer
}

func NewSessionHandler(sessionRepo repositories.SessionRepository, composer *rating.Composer) *SessionHandler {
	return &SessionHandler{
		sessionRepo: sessionRepo,
		composer:    composer,
	}
}

// HandleGetSession returns the current state of a scoring session. Once the
// model pass is done the raw ratings and reply are included so the consultant
// can review them; after submission the full score breakdown comes back too.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := models.SessionResponse{
		ID:         session.ID.String(),
		Status:     string(session.Status),
		Consultant: session.Consultant,
		Candidate:  session.Candidate,
		Role:       session.Role,
		Company:    session.Company,
	}

	switch session.Status {
	case models.StatusRated, models.StatusSubmitted:
		if session.ModelRatings != nil {
			var ratings map[string]string
			if err := json.Unmarshal([]byte(*session.ModelRatings), &ratings); err == nil {
				resp.ModelRatings = ratings
				if session.Status == models.StatusRated {
					// Model-only preview so the consultant sees the converted
					// scores before submitting their half.
					preview := h.composer.Compose(ratings, nil, session.ReportedTotal)
					resp.Breakdown = &preview
				}
			}
		}
		if session.ModelReply != nil {
			resp.ModelReply = *session.ModelReply
		}
	case models.StatusFailed:
		resp.ErrorMessage = session.ErrorMessage
	}

	if session.Status == models.StatusSubmitted {
		if breakdown, ok := h.rebuildBreakdown(session); ok {
			resp.Breakdown = breakdown
			resp.BenchmarkNote = benchmarkNote(breakdown)
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// rebuildBreakdown recomputes the submitted score sheet from the stored
// rating maps. Composition is deterministic so this matches what was written
// to the spreadsheet.
func (h *SessionHandler) rebuildBreakdown(session *models.ScoringSession) (*rating.Breakdown, bool) {
	if session.ModelRatings == nil || session.ConsultantRatings == nil {
		return nil, false
	}

	var modelRatings, consultantRatings map[string]string
	if err := json.Unmarshal([]byte(*session.ModelRatings), &modelRatings); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(*session.ConsultantRatings), &consultantRatings); err != nil {
		return nil, false
	}

	breakdown := h.composer.Compose(modelRatings, consultantRatings, session.ReportedTotal)
	return &breakdown, true
}

func benchmarkNote(b *rating.Breakdown) string {
	switch {
	case b.Total > b.Benchmark:
		return fmt.Sprintf("Total %d is above the benchmark of %d", b.Total, b.Benchmark)
	case b.Total < b.Benchmark:
		return fmt.Sprintf("Total %d is below the benchmark of %d", b.Total, b.Benchmark)
	default:
		return fmt.Sprintf("Total %d matches the benchmark of %d", b.Total, b.Benchmark)
	}
}
