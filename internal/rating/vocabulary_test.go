package rating

import "testing"

func TestVocabularyLookup(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		token string
		want  int
	}{
		{"low", 0},
		{"none", 0},
		{"no", 0},
		{"moderate", 1},
		{"notable", 1},
		{"legacy", 1},
		{"sound", 2},
		{"single instance", 2},
		{"yes", 2},
		{"strong", 3},
		{"exceptional", 5},
		{"thematic", 5},
		// normalization
		{"  Strong  ", 3},
		{"EXCEPTIONAL", 5},
		{"**moderate**", 1},
		{"single  instance", 2},
		// unknown tokens fail open to 0
		{"excellent", 0},
		{"N/A", 0},
		{"", 0},
		{"garbage value", 0},
	}

	for _, tt := range tests {
		if got := vocab.Lookup(tt.token); got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestVocabularyLookupIsTotal(t *testing.T) {
	vocab := DefaultVocabulary()

	// Every known token resolves deterministically on repeated calls.
	for token, want := range vocab {
		for i := 0; i < 3; i++ {
			if got := vocab.Lookup(token); got != want {
				t.Fatalf("Lookup(%q) = %d on call %d, want %d", token, got, i+1, want)
			}
		}
	}
}

func TestVocabularyScoreNumericPassThrough(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"0", 0},
		{"strong", 3},
		{"-2", 0}, // negative numbers are not valid ratings
		{"nonsense", 0},
	}

	for _, tt := range tests {
		if got := vocab.Score(tt.raw); got != tt.want {
			t.Errorf("Score(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
