package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/models"
	"trackrecord/cv-rater/internal/rating"
	"trackrecord/cv-rater/internal/repositories"
)

// The guidance doc type ingested by scripts/ingest_documents.go.
const guidanceDocType = "rubric_guidance"

var (
	ErrSessionNotRated  = errors.New("session has no model rating yet")
	ErrAlreadySubmitted = errors.New("session was already submitted")
	ErrInvalidRating    = errors.New("invalid consultant rating")
	// ErrPersistFailed wraps spreadsheet append failures so callers can
	// distinguish "scored but unsaved" from scoring errors. The session stays
	// rated and the submit can be retried.
	ErrPersistFailed = errors.New("failed to persist evaluation record")
)

// RaterService runs the two halves of a scoring session: the automated model
// pass and the consultant submission that persists the combined record.
type RaterService interface {
	ScoreSession(ctx context.Context, sessionID uuid.UUID) error
	SubmitSession(ctx context.Context, sessionID uuid.UUID, consultantRatings map[string]string) (*rating.Breakdown, error)
}

type raterService struct {
	sessionRepo repositories.SessionRepository
	docRepo     repositories.DocumentRepository
	extractor   TextExtractor
	provider    ChatProvider
	embedder    Embedder      // optional, nil disables guidance retrieval
	guidance    GuidanceStore // optional, nil disables guidance retrieval
	rubric      RubricService
	appender    RecordAppender
	builder     *rating.RequestBuilder
	parser      *rating.Parser
	composer    *rating.Composer
	maxRetries  int
}

func NewRaterService(
	sessionRepo repositories.SessionRepository,
	docRepo repositories.DocumentRepository,
	extractor TextExtractor,
	provider ChatProvider,
	embedder Embedder,
	guidance GuidanceStore,
	rubric RubricService,
	appender RecordAppender,
	totalPolicy rating.TotalPolicy,
	maxRetries int,
) RaterService {
	vocab := rating.DefaultVocabulary()
	return &raterService{
		sessionRepo: sessionRepo,
		docRepo:     docRepo,
		extractor:   extractor,
		provider:    provider,
		embedder:    embedder,
		guidance:    guidance,
		rubric:      rubric,
		appender:    appender,
		builder:     rating.NewRequestBuilder(rubric.Text()),
		parser:      rating.NewParser(vocab),
		composer:    rating.NewComposer(vocab, totalPolicy),
		maxRetries:  maxRetries,
	}
}

// ScoreSession runs the automated pass: extract the CV text, send the rating
// request, parse the reply, store the pending ratings.
func (r *raterService) ScoreSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.sessionRepo.UpdateStatus(sessionID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting model scoring for session %s\n", sessionID)

	session, err := r.sessionRepo.FindByID(sessionID)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, err.Error())
		return fmt.Errorf("failed to get session: %w", err)
	}

	doc, err := r.docRepo.FindByID(session.CVDocumentID)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, fmt.Sprintf("CV document not found: %v", err))
		return fmt.Errorf("failed to get CV document: %w", err)
	}

	log.Println("📄 Extracting CV text...")
	cvText, err := r.extractor.ExtractText(doc.FilePath)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, fmt.Sprintf("Failed to extract CV text: %v", err))
		return fmt.Errorf("failed to extract CV text: %w", err)
	}
	cvText = CleanText(cvText)

	guidance := r.retrieveGuidance(ctx, session.Role)

	req, err := r.builder.Build(cvText, session.Role, guidance)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, err.Error())
		return fmt.Errorf("failed to build rating request: %w", err)
	}

	log.Printf("🤖 Requesting model rating (%d characters of CV text)...\n", len(cvText))
	reply, err := r.provider.GenerateTextWithRetry(ctx, req.System, req.Task, 0.1, r.maxRetries)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, fmt.Sprintf("Rating model call failed: %v", err))
		return fmt.Errorf("rating model call failed: %w", err)
	}

	extraction := r.parser.Parse(reply)
	for cat, raw := range extraction.Ratings {
		if raw == rating.MissingRating {
			log.Printf("⚠️  Category %q missing from model reply, defaulting to 0\n", cat)
		}
	}

	// Model-only composition to record the subtotal and the reported-total
	// cross-check alongside the raw ratings.
	preview := r.composer.Compose(extraction.Ratings, nil, extraction.ReportedTotal)
	if preview.TotalMismatch {
		log.Printf("⚠️  Model reported total %d disagrees with re-summed %d for session %s\n",
			*extraction.ReportedTotal, preview.ModelSubtotal, sessionID)
	}

	ratingsJSON, err := json.Marshal(extraction.Ratings)
	if err != nil {
		r.sessionRepo.UpdateError(sessionID, fmt.Sprintf("Failed to encode ratings: %v", err))
		return fmt.Errorf("failed to encode ratings: %w", err)
	}

	result := &repositories.ModelResultData{
		ModelRatings:  string(ratingsJSON),
		ModelReply:    reply,
		ModelSubtotal: preview.ModelSubtotal,
		ReportedTotal: extraction.ReportedTotal,
		TotalMismatch: preview.TotalMismatch,
	}
	if err := r.sessionRepo.UpdateModelResult(sessionID, result); err != nil {
		return fmt.Errorf("failed to save model result: %w", err)
	}

	log.Printf("✅ Model scoring completed for session %s (subtotal %d)\n", sessionID, preview.ModelSubtotal)
	return nil
}

// SubmitSession combines the stored model ratings with the consultant's
// selections, persists the record, and only then marks the session submitted.
func (r *raterService) SubmitSession(ctx context.Context, sessionID uuid.UUID, consultantRatings map[string]string) (*rating.Breakdown, error) {
	session, err := r.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case models.StatusSubmitted:
		return nil, ErrAlreadySubmitted
	case models.StatusRated:
		// proceed
	default:
		return nil, ErrSessionNotRated
	}

	if err := validateConsultantRatings(consultantRatings); err != nil {
		return nil, err
	}

	var modelRatings map[string]string
	if session.ModelRatings != nil {
		if err := json.Unmarshal([]byte(*session.ModelRatings), &modelRatings); err != nil {
			return nil, fmt.Errorf("failed to decode stored model ratings: %w", err)
		}
	}

	breakdown := r.composer.Compose(modelRatings, consultantRatings, session.ReportedTotal)
	record := rating.NewRecord(session.Consultant, session.Candidate, session.Role, session.Company, breakdown)

	log.Printf("💾 Appending evaluation record for session %s (total %d, benchmark %d)\n",
		sessionID, breakdown.Total, breakdown.Benchmark)
	if err := r.appender.AppendRecord(ctx, record); err != nil {
		// Scored but unsaved: keep the session rated so the submit can be
		// retried without re-running the model.
		log.Printf("❌ Record append failed for session %s: %v\n", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	consultantJSON, err := json.Marshal(consultantRatings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode consultant ratings: %w", err)
	}

	submission := &repositories.SubmissionData{
		ConsultantRatings:  string(consultantJSON),
		ConsultantSubtotal: breakdown.ConsultantSubtotal,
		TotalScore:         breakdown.Total,
	}
	if err := r.sessionRepo.UpdateSubmission(sessionID, submission); err != nil {
		return nil, fmt.Errorf("record appended but session update failed: %w", err)
	}

	log.Printf("✅ Session %s submitted\n", sessionID)
	return &breakdown, nil
}

// retrieveGuidance fetches rubric guidance for the role. Strictly
// best-effort: any failure degrades to an empty context.
func (r *raterService) retrieveGuidance(ctx context.Context, role string) string {
	if r.embedder == nil || r.guidance == nil {
		return ""
	}

	embedding, err := r.embedder.GenerateEmbedding(ctx, "Scoring guidance for a "+role+" role")
	if err != nil {
		log.Printf("⚠️  Warning: failed to embed guidance query: %v\n", err)
		return ""
	}

	results, err := r.guidance.SearchSimilar(ctx, embedding, guidanceDocType, 3)
	if err != nil {
		log.Printf("⚠️  Warning: guidance retrieval failed: %v\n", err)
		return ""
	}

	var parts []string
	for _, res := range results {
		parts = append(parts, strings.TrimSpace(res.Text))
	}
	return strings.Join(parts, "\n\n")
}

// validateConsultantRatings checks that every consultant category is present
// and set to one of its selectable options, mirroring the fixed dropdowns the
// reviewer picks from.
func validateConsultantRatings(ratings map[string]string) error {
	for _, cat := range rating.ConsultantCategories() {
		value, ok := ratings[cat.Name]
		if !ok {
			return fmt.Errorf("%w: missing category %q", ErrInvalidRating, cat.Name)
		}
		if !cat.AllowsOption(value) {
			return fmt.Errorf("%w: %q is not a valid option for %q", ErrInvalidRating, value, cat.Name)
		}
	}
	for name := range ratings {
		if _, ok := rating.FindConsultantCategory(name); !ok {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidRating, name)
		}
	}
	return nil
}
