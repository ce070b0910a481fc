package rating

import (
	"errors"
	"strings"
	"testing"
)

const testRubric = "Score education low to exceptional based on institution tier."

func TestBuildRequest(t *testing.T) {
	builder := NewRequestBuilder(testRubric)

	req, err := builder.Build("10 years at Acme Corp as CFO.", "Finance Director", "")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if req.System != testRubric {
		t.Errorf("System = %q, want the rubric verbatim", req.System)
	}
	if !strings.Contains(req.Task, "Finance Director") {
		t.Error("Task should contain the target role")
	}
	if !strings.Contains(req.Task, "10 years at Acme Corp as CFO.") {
		t.Error("Task should contain the candidate text")
	}
	for _, cat := range ModelCategories() {
		if !strings.Contains(req.Task, cat.Name) {
			t.Errorf("Task is missing category %q", cat.Name)
		}
	}
	if !strings.Contains(req.Task, "Ratings Recap: Education = ..., Industry = ..., Range = ..., Benchmark = ..., Length = ..., Within = ...") {
		t.Error("Task should demand the canonical recap layout")
	}
}

func TestBuildRequestIncludesGuidance(t *testing.T) {
	builder := NewRequestBuilder(testRubric)

	req, err := builder.Build("cv text", "Partner", "Prefer candidates with regional exposure.")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !strings.Contains(req.Task, "Prefer candidates with regional exposure.") {
		t.Error("Task should include the retrieved guidance")
	}
}

func TestBuildRequestPreconditions(t *testing.T) {
	builder := NewRequestBuilder(testRubric)

	if _, err := builder.Build("", "Partner", ""); !errors.Is(err, ErrEmptyCandidateText) {
		t.Errorf("empty CV text: err = %v, want ErrEmptyCandidateText", err)
	}
	if _, err := builder.Build("   \n", "Partner", ""); !errors.Is(err, ErrEmptyCandidateText) {
		t.Errorf("whitespace CV text: err = %v, want ErrEmptyCandidateText", err)
	}
	if _, err := builder.Build("cv text", "", ""); !errors.Is(err, ErrEmptyRole) {
		t.Errorf("empty role: err = %v, want ErrEmptyRole", err)
	}
}

func TestRecapLayoutRoundTrips(t *testing.T) {
	// The layout the builder demands must be parseable once the model fills
	// in the blanks.
	reply := "Ratings Recap: Education = strong, Industry = low, Range = sound, Benchmark = moderate, Length = low, Within = notable"

	got := NewParser(DefaultVocabulary()).Parse(reply)

	if got.Ratings["Education"] != "strong" || got.Ratings["Within Firm Alignment"] != "notable" {
		t.Errorf("recap layout did not round-trip through the parser: %v", got.Ratings)
	}
}
