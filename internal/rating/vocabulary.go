package rating

import (
	"strconv"
	"strings"
)

// Vocabulary maps qualitative rating words to integer scores. It is defined
// once at startup and never mutated.
type Vocabulary map[string]int

// DefaultVocabulary returns the process-wide rating vocabulary. The entries
// cover both the model-facing rubric terms and the consultant option lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"low":             0,
		"none":            0,
		"no":              0,
		"moderate":        1,
		"notable":         1,
		"legacy":          1,
		"sound":           2,
		"single instance": 2,
		"yes":             2,
		"strong":          3,
		"exceptional":     5,
		"thematic":        5,
	}
}

// Lookup resolves a raw rating token to its score. Unrecognized tokens score 0
// rather than erroring: the raters are free text and defaulting is the policy.
func (v Vocabulary) Lookup(token string) int {
	if score, ok := v[NormalizeToken(token)]; ok {
		return score
	}
	return 0
}

// Contains reports whether the normalized token is a known rating word.
func (v Vocabulary) Contains(token string) bool {
	_, ok := v[NormalizeToken(token)]
	return ok
}

// Score converts a raw rating value to an integer: vocabulary words resolve
// through the map, bare non-negative numbers pass through, everything else
// (including "N/A") scores 0.
func (v Vocabulary) Score(raw string) int {
	norm := NormalizeToken(raw)
	if score, ok := v[norm]; ok {
		return score
	}
	if n, err := strconv.Atoi(norm); err == nil && n >= 0 {
		return n
	}
	return 0
}

// NormalizeToken lowercases a rating token, trims whitespace and stray
// markdown/punctuation, and collapses internal runs of spaces so multi-word
// entries like "single instance" match regardless of formatting.
func NormalizeToken(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.Trim(token, "*_.,;:!\"'()")
	return strings.Join(strings.Fields(token), " ")
}
