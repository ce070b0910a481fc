package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"trackrecord/cv-rater/internal/rating"
)

func testRecord() rating.Record {
	b := rating.NewComposer(rating.DefaultVocabulary(), rating.TotalPolicyResum).
		Compose(map[string]string{"Education": "strong"}, nil, nil)
	rec := rating.NewRecord("Jane", "John Doe", "CFO", "Acme", b)
	rec.Timestamp = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return rec
}

func TestWorkbookAppendRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.xlsx")
	wb := NewWorkbookService(path)

	if err := wb.AppendRecord(context.Background(), testRecord()); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	if err := wb.AppendRecord(context.Background(), testRecord()); err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(workbookSheet)
	if err != nil {
		t.Fatal(err)
	}

	// Header plus two record rows.
	if len(rows) != 3 {
		t.Fatalf("workbook has %d rows, want 3", len(rows))
	}
	if len(rows[1]) != 25 {
		t.Errorf("record row has %d columns, want 25", len(rows[1]))
	}
	if rows[1][2] != "John Doe" {
		t.Errorf("candidate column = %q, want %q", rows[1][2], "John Doe")
	}
}
