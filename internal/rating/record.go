package rating

import "time"

// Record is the unit persisted downstream: one spreadsheet row per completed
// scoring session. The column layout is a de facto wire format other tooling
// reads, so Row's ordering must never change without a coordinated schema
// bump: 8 header fields, then the 6 model scores, then the 11 consultant
// scores, 25 columns in all.
type Record struct {
	Timestamp          time.Time
	Consultant         string
	Candidate          string
	Role               string
	Company            string
	ModelSubtotal      int
	ConsultantSubtotal int
	Total              int
	ModelScores        []int // fixed ModelCategories order
	ConsultantScores   []int // fixed ConsultantCategories order
}

// NewRecord assembles the persisted record from a composed breakdown.
func NewRecord(consultant, candidate, role, company string, b Breakdown) Record {
	return Record{
		Timestamp:          time.Now(),
		Consultant:         consultant,
		Candidate:          candidate,
		Role:               role,
		Company:            company,
		ModelSubtotal:      b.ModelSubtotal,
		ConsultantSubtotal: b.ConsultantSubtotal,
		Total:              b.Total,
		ModelScores:        b.ScoresFor(RaterModel),
		ConsultantScores:   b.ScoresFor(RaterConsultant),
	}
}

// Row flattens the record into the fixed append-row layout.
func (r Record) Row() []interface{} {
	row := []interface{}{
		r.Timestamp.Format(time.RFC3339),
		r.Consultant,
		r.Candidate,
		r.Role,
		r.Company,
		r.ModelSubtotal,
		r.ConsultantSubtotal,
		r.Total,
	}
	for _, s := range r.ModelScores {
		row = append(row, s)
	}
	for _, s := range r.ConsultantScores {
		row = append(row, s)
	}
	return row
}

// Header returns the column names matching Row, used when a fresh workbook is
// created.
func Header() []interface{} {
	header := []interface{}{
		"Timestamp", "Consultant", "Candidate", "Role", "Company",
		"Model Score", "Consultant Score", "Total Score",
	}
	for _, cat := range ModelCategories() {
		header = append(header, "Model: "+cat.Name)
	}
	for _, cat := range ConsultantCategories() {
		header = append(header, "Consultant: "+cat.Name)
	}
	return header
}
