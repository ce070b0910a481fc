package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackrecord/cv-rater/internal/models"
)

type SessionRepository interface {
	Create(session *models.ScoringSession) error
	FindByID(id uuid.UUID) (*models.ScoringSession, error)
	UpdateStatus(id uuid.UUID, status models.SessionStatus) error
	UpdateModelResult(id uuid.UUID, data *ModelResultData) error
	UpdateSubmission(id uuid.UUID, data *SubmissionData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingSessions(limit int) ([]models.ScoringSession, error)
}

// ModelResultData is written when the automated pass completes; it moves the
// session to the rated state.
type ModelResultData struct {
	ModelRatings  string // JSON: category -> raw token
	ModelReply    string
	ModelSubtotal int
	ReportedTotal *int
	TotalMismatch bool
}

// SubmissionData is written only after the spreadsheet append succeeded; it
// moves the session to the submitted state.
type SubmissionData struct {
	ConsultantRatings  string // JSON: category -> selected option
	ConsultantSubtotal int
	TotalScore         int
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.ScoringSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create scoring session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.ScoringSession, error) {
	var session models.ScoringSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("scoring session not found")
		}
		return nil, fmt.Errorf("failed to find scoring session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) UpdateStatus(id uuid.UUID, status models.SessionStatus) error {
	result := r.db.Model(&models.ScoringSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("scoring session not found")
	}

	return nil
}

func (r *sessionRepository) UpdateModelResult(id uuid.UUID, data *ModelResultData) error {
	updates := map[string]interface{}{
		"status":         models.StatusRated,
		"model_ratings":  data.ModelRatings,
		"model_reply":    data.ModelReply,
		"model_subtotal": data.ModelSubtotal,
		"total_mismatch": data.TotalMismatch,
		"updated_at":     time.Now(),
	}
	if data.ReportedTotal != nil {
		updates["reported_total"] = *data.ReportedTotal
	}

	result := r.db.Model(&models.ScoringSession{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update model result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("scoring session not found")
	}

	return nil
}

func (r *sessionRepository) UpdateSubmission(id uuid.UUID, data *SubmissionData) error {
	result := r.db.Model(&models.ScoringSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              models.StatusSubmitted,
			"consultant_ratings":  data.ConsultantRatings,
			"consultant_subtotal": data.ConsultantSubtotal,
			"total_score":         data.TotalScore,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update submission: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("scoring session not found")
	}

	return nil
}

func (r *sessionRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.ScoringSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("scoring session not found")
	}

	return nil
}

func (r *sessionRepository) FindPendingSessions(limit int) ([]models.ScoringSession, error) {
	var sessions []models.ScoringSession
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&sessions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending sessions: %w", err)
	}

	return sessions, nil
}
