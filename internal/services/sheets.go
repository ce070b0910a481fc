package services

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"trackrecord/cv-rater/internal/rating"
)

// RecordAppender persists one evaluation record per completed scoring
// session. Appends are independent and order-insensitive, so concurrent
// sessions interleave safely.
type RecordAppender interface {
	AppendRecord(ctx context.Context, rec rating.Record) error
}

type sheetsService struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsService appends records to the shared Google Sheet using a service
// account.
func NewSheetsService(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (RecordAppender, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return &sheetsService{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRecord implements RecordAppender.
func (s *sheetsService) AppendRecord(ctx context.Context, rec rating.Record) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{rec.Row()},
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetName+"!A1", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to sheet: %w", err)
	}

	return nil
}
