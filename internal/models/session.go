package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusQueued     SessionStatus = "queued"
	StatusProcessing SessionStatus = "processing"
	StatusRated      SessionStatus = "rated"
	StatusSubmitted  SessionStatus = "submitted"
	StatusFailed     SessionStatus = "failed"
)

// ScoringSession is one upload-to-spreadsheet pass. It carries the pending
// model ratings between the automated pass and the consultant's submission so
// no ambient state is needed. A session only becomes submitted after the
// spreadsheet append is confirmed.
type ScoringSession struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Consultant   string        `gorm:"type:text" json:"consultant"`
	Candidate    string        `gorm:"type:text" json:"candidate"`
	Role         string        `gorm:"type:text" json:"role"`
	Company      string        `gorm:"type:text" json:"company"`
	CVDocumentID uuid.UUID     `gorm:"type:uuid;not null" json:"cv_document_id"`
	Status       SessionStatus `gorm:"not null;default:'queued'" json:"status"`

	ModelRatings  *string `gorm:"type:text" json:"model_ratings,omitempty"` // JSON: category -> raw token
	ModelReply    *string `gorm:"type:text" json:"-"`
	ModelSubtotal *int    `json:"model_subtotal,omitempty"`
	ReportedTotal *int    `json:"reported_total,omitempty"`
	TotalMismatch bool    `json:"total_mismatch,omitempty"`

	ConsultantRatings  *string `gorm:"type:text" json:"consultant_ratings,omitempty"` // JSON: category -> selected option
	ConsultantSubtotal *int    `json:"consultant_subtotal,omitempty"`
	TotalScore         *int    `json:"total_score,omitempty"`

	ErrorMessage *string   `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	CVDocument Document `gorm:"foreignKey:CVDocumentID" json:"-"`
}

func (ScoringSession) TableName() string {
	return "scoring_sessions"
}
