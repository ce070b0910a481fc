package rating

import "testing"

func TestCategoryCounts(t *testing.T) {
	if got := len(ModelCategories()); got != 6 {
		t.Errorf("model categories = %d, want 6", got)
	}
	if got := len(ConsultantCategories()); got != 11 {
		t.Errorf("consultant categories = %d, want 11", got)
	}
}

func TestInvertedCategories(t *testing.T) {
	inverted := map[string]bool{
		"Regretted Career Choices":   true,
		"Regretted Personal Choices": true,
	}
	for _, cat := range ConsultantCategories() {
		if IsInverted(cat.Name) != inverted[cat.Name] {
			t.Errorf("IsInverted(%q) = %v, want %v", cat.Name, IsInverted(cat.Name), inverted[cat.Name])
		}
	}
}

func TestAllowsOption(t *testing.T) {
	cat, ok := FindConsultantCategory("Career Moves Facilitated by Prior Colleagues")
	if !ok {
		t.Fatal("category not found")
	}

	tests := []struct {
		value string
		want  bool
	}{
		{"none", true},
		{"single instance", true},
		{"Single Instance", true}, // normalized before matching
		{"thematic", true},
		{"strong", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := cat.AllowsOption(tt.value); got != tt.want {
			t.Errorf("AllowsOption(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
