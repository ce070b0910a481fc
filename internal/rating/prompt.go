package rating

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCandidateText is returned when a rating request is built without any
// extracted CV text. Submitting an empty evaluation would silently score zero
// everywhere, so the builder refuses instead.
var ErrEmptyCandidateText = errors.New("candidate text is empty, nothing to rate")

// ErrEmptyRole is returned when no target role was supplied.
var ErrEmptyRole = errors.New("target role is required")

// Request is the two-part message sent to the rating model: the rubric as
// system instructions and the scoring task as the user turn.
type Request struct {
	System string
	Task   string
}

// RequestBuilder assembles rating requests from candidate text, the fixed
// rubric, and a target role.
type RequestBuilder struct {
	rubric string
}

func NewRequestBuilder(rubric string) *RequestBuilder {
	return &RequestBuilder{rubric: rubric}
}

// Build constructs the rating request. guidance is optional extra context
// retrieved for the role; an empty string omits the section. The task demands
// the one canonical recap layout so the parser has a stable target.
func (b *RequestBuilder) Build(cvText, role, guidance string) (*Request, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, ErrEmptyCandidateText
	}
	if strings.TrimSpace(role) == "" {
		return nil, ErrEmptyRole
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an evaluator scoring a CV for a role at %q.\n\n", role)
	sb.WriteString("You MUST evaluate the CV using the rubric that was just provided. ")
	sb.WriteString("DO NOT invent criteria not found in the rubric. ")
	sb.WriteString("Your goal is to return word-based ratings only, strictly using rubric-defined terms.\n\n")

	sb.WriteString("Categories to score:\n")
	for i, cat := range ModelCategories() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, cat.Name)
	}

	sb.WriteString("\nFor each category, return:\n")
	sb.WriteString("- A word-based rating (e.g. low, moderate, sound, strong, exceptional)\n")
	sb.WriteString("- A short justification\n\n")

	sb.WriteString("At the end, repeat only the 6 word-based ratings in order, on a single line, exactly in this layout:\n")
	sb.WriteString(recapLayout())
	sb.WriteString("\n\nDo not calculate numeric scores yourself.\n")

	if strings.TrimSpace(guidance) != "" {
		sb.WriteString("\nAdditional guidance retrieved for this role:\n")
		sb.WriteString(guidance)
		sb.WriteString("\n")
	}

	sb.WriteString("\nCV:\n\"\"\"\n")
	sb.WriteString(cvText)
	sb.WriteString("\n\"\"\"\n")

	return &Request{System: b.rubric, Task: sb.String()}, nil
}

func recapLayout() string {
	parts := make([]string, 0, 6)
	for _, cat := range ModelCategories() {
		parts = append(parts, cat.Recap+" = ...")
	}
	return "Ratings Recap: " + strings.Join(parts, ", ")
}
