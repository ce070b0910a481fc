package rating

import "testing"

func newTestComposer() *Composer {
	return NewComposer(DefaultVocabulary(), TotalPolicyResum)
}

// allConsultant builds a complete consultant rating map with every category
// set to its lowest option, then applies overrides.
func allConsultant(overrides map[string]string) map[string]string {
	ratings := make(map[string]string)
	for _, cat := range ConsultantCategories() {
		ratings[cat.Name] = cat.Options[0] // "low" or "none"
	}
	for name, value := range overrides {
		ratings[name] = value
	}
	return ratings
}

func TestComposeModelSubtotalWithMissingCategories(t *testing.T) {
	model := map[string]string{
		"Education":           "strong",
		"Industry Experience": "moderate",
	}

	b := newTestComposer().Compose(model, nil, nil)

	if b.ModelSubtotal != 4 {
		t.Errorf("ModelSubtotal = %d, want 4 (3 + 1 + 0*4)", b.ModelSubtotal)
	}
	if b.Benchmark != BenchmarkScore {
		t.Errorf("Benchmark = %d, want %d", b.Benchmark, BenchmarkScore)
	}
}

func TestComposeInvertedCategories(t *testing.T) {
	consultant := allConsultant(map[string]string{
		"Regretted Career Choices": "thematic",
	})

	b := newTestComposer().Compose(nil, consultant, nil)

	if b.ConsultantSubtotal != -5 {
		t.Errorf("ConsultantSubtotal = %d, want -5 (0*9 + (-5) + 0)", b.ConsultantSubtotal)
	}
	for _, cs := range b.PerCategory {
		if cs.Category == "Regretted Career Choices" && cs.Score != -5 {
			t.Errorf("Regretted Career Choices contribution = %d, want -5", cs.Score)
		}
	}
}

func TestComposeTotalMatchesBenchmark(t *testing.T) {
	// Model: 3+3+3+3+1+1 = 14.
	model := map[string]string{
		"Education":                       "strong",
		"Industry Experience":             "strong",
		"Range of Experience":             "strong",
		"Benchmark of Career Exposure":    "strong",
		"Average Length of Stay at Firms": "moderate",
		"Within Firm Alignment":           "moderate",
	}
	// Consultant: 3+3+2 = 8, everything else at zero.
	consultant := allConsultant(map[string]string{
		"Extracurricular Activities":  "strong",
		"Speed of Career Progression": "strong",
		"Industry Experience":         "sound",
	})

	b := newTestComposer().Compose(model, consultant, nil)

	if b.ModelSubtotal != 14 {
		t.Errorf("ModelSubtotal = %d, want 14", b.ModelSubtotal)
	}
	if b.ConsultantSubtotal != 8 {
		t.Errorf("ConsultantSubtotal = %d, want 8", b.ConsultantSubtotal)
	}
	if b.Total != 22 {
		t.Errorf("Total = %d, want 22", b.Total)
	}
	if b.Total != b.Benchmark {
		t.Errorf("Total %d should equal benchmark %d exactly", b.Total, b.Benchmark)
	}
}

func TestComposeTotalIsSumOfSubtotals(t *testing.T) {
	model := map[string]string{"Education": "exceptional"}
	consultant := allConsultant(map[string]string{
		"Regretted Personal Choices": "single instance",
		"Level of Experience":        "sound",
	})

	b := newTestComposer().Compose(model, consultant, nil)

	if b.Total != b.ModelSubtotal+b.ConsultantSubtotal {
		t.Errorf("Total = %d, want ModelSubtotal(%d) + ConsultantSubtotal(%d)",
			b.Total, b.ModelSubtotal, b.ConsultantSubtotal)
	}
}

func TestComposeUnknownTokensScoreZero(t *testing.T) {
	model := map[string]string{
		"Education":           "stellar", // not in the vocabulary
		"Industry Experience": MissingRating,
	}

	b := newTestComposer().Compose(model, nil, nil)

	if b.ModelSubtotal != 0 {
		t.Errorf("ModelSubtotal = %d, want 0 for unknown tokens", b.ModelSubtotal)
	}
}

func TestComposeReportedTotalCrossCheck(t *testing.T) {
	model := map[string]string{"Education": "strong", "Industry Experience": "moderate"} // resums to 4
	reported := 9

	b := newTestComposer().Compose(model, nil, &reported)

	if !b.TotalMismatch {
		t.Error("TotalMismatch = false, want true when reported total disagrees")
	}
	if b.ModelSubtotal != 4 {
		t.Errorf("ModelSubtotal = %d, want re-summed 4 under resum policy", b.ModelSubtotal)
	}
}

func TestComposeReportedTotalPolicy(t *testing.T) {
	model := map[string]string{"Education": "strong", "Industry Experience": "moderate"}
	reported := 9

	b := NewComposer(DefaultVocabulary(), TotalPolicyReported).Compose(model, nil, &reported)

	if b.ModelSubtotal != 9 {
		t.Errorf("ModelSubtotal = %d, want reported 9 under reported policy", b.ModelSubtotal)
	}
	if b.Total != 9 {
		t.Errorf("Total = %d, want 9", b.Total)
	}
	if !b.TotalMismatch {
		t.Error("TotalMismatch should still flag the disagreement")
	}
}

func TestComposeAgreeingReportedTotal(t *testing.T) {
	model := map[string]string{"Education": "strong", "Industry Experience": "moderate"}
	reported := 4

	b := newTestComposer().Compose(model, nil, &reported)

	if b.TotalMismatch {
		t.Error("TotalMismatch = true, want false when reported total agrees")
	}
}

func TestScoresForKeepsFixedOrderAndUnsignedValues(t *testing.T) {
	consultant := allConsultant(map[string]string{
		"Regretted Career Choices": "thematic",
	})

	b := newTestComposer().Compose(nil, consultant, nil)
	scores := b.ScoresFor(RaterConsultant)

	if len(scores) != len(ConsultantCategories()) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(ConsultantCategories()))
	}
	// Regretted Career Choices is the 10th consultant category; the sheet
	// stores the unsigned converted value.
	if scores[9] != 5 {
		t.Errorf("scores[9] = %d, want unsigned 5", scores[9])
	}
}
