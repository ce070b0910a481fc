package rating

import "testing"

func TestRecordRowWidthAndOrder(t *testing.T) {
	model := map[string]string{
		"Education":           "strong",
		"Industry Experience": "moderate",
	}
	consultant := allConsultant(map[string]string{
		"Regretted Career Choices": "thematic",
	})

	b := newTestComposer().Compose(model, consultant, nil)
	rec := NewRecord("Jane", "John Doe", "CFO", "Acme", b)
	row := rec.Row()

	// 8 header fields + 6 model scores + 11 consultant scores.
	if len(row) != 25 {
		t.Fatalf("len(row) = %d, want 25", len(row))
	}

	if row[1] != "Jane" || row[2] != "John Doe" || row[3] != "CFO" || row[4] != "Acme" {
		t.Errorf("identity columns wrong: %v", row[:5])
	}
	if row[5] != b.ModelSubtotal || row[6] != b.ConsultantSubtotal || row[7] != b.Total {
		t.Errorf("score columns wrong: %v", row[5:8])
	}
	// Model scores follow in fixed category order: Education first.
	if row[8] != 3 {
		t.Errorf("row[8] = %v, want 3 (Education = strong)", row[8])
	}
	// Consultant block starts at column 14; Regretted Career Choices is the
	// 10th consultant category, stored unsigned.
	if row[14+9] != 5 {
		t.Errorf("row[23] = %v, want unsigned 5", row[14+9])
	}
}

func TestHeaderMatchesRowWidth(t *testing.T) {
	b := newTestComposer().Compose(nil, nil, nil)
	rec := NewRecord("", "", "", "", b)

	if len(Header()) != len(rec.Row()) {
		t.Errorf("header width %d != row width %d", len(Header()), len(rec.Row()))
	}
}
