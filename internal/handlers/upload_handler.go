package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trackrecord/cv-rater/internal/models"
	"trackrecord/cv-rater/internal/repositories"
	"trackrecord/cv-rater/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	sessionRepo    repositories.SessionRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	sessionRepo repositories.SessionRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		sessionRepo:    sessionRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload accepts a CV file plus the candidate details and queues a
// scoring session for the worker.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing 'cv' file. Please upload a .txt, .pdf or .docx CV",
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	consultant := strings.TrimSpace(c.FormValue("consultant"))
	candidate := strings.TrimSpace(c.FormValue("candidate"))
	role := strings.TrimSpace(c.FormValue("role"))
	company := strings.TrimSpace(c.FormValue("company"))

	if candidate == "" || role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "'candidate' and 'role' form fields are required",
		})
	}

	// Save file
	filename, filePath, err := h.storageService.SaveFile(cvFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: cvFile.Filename,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV document record: %v", err),
		})
	}

	session := models.ScoringSession{
		ID:           uuid.New(),
		Consultant:   consultant,
		Candidate:    candidate,
		Role:         role,
		Company:      company,
		CVDocumentID: doc.ID,
		Status:       models.StatusQueued,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.sessionRepo.Create(&session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to create scoring session: %v", err),
		})
	}

	h.worker.EnqueueJob(session.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.UploadResponse{
		SessionID:    session.ID.String(),
		DocumentID:   doc.ID.String(),
		OriginalName: doc.OriginalFileName,
		Status:       string(session.Status),
	})
}
