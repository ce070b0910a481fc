package models

import "trackrecord/cv-rater/internal/rating"

type UnlockRequest struct {
	Password string `json:"password"`
}

type UnlockResponse struct {
	Token string `json:"token"`
}

type UploadResponse struct {
	SessionID    string `json:"session_id"`
	DocumentID   string `json:"document_id"`
	OriginalName string `json:"original_name"`
	Status       string `json:"status"`
}

type SubmitRequest struct {
	Ratings map[string]string `json:"ratings"` // consultant category -> selected option
}

type SessionResponse struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	Consultant    string            `json:"consultant"`
	Candidate     string            `json:"candidate"`
	Role          string            `json:"role"`
	Company       string            `json:"company"`
	ModelRatings  map[string]string `json:"model_ratings,omitempty"`
	ModelReply    string            `json:"model_reply,omitempty"`
	Breakdown     *rating.Breakdown `json:"breakdown,omitempty"`
	ErrorMessage  *string           `json:"error_message,omitempty"`
	BenchmarkNote string            `json:"benchmark_note,omitempty"`
}
