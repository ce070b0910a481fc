package services

import (
	"fmt"
	"os"
	"strings"
)

// RubricService serves the fixed scoring rubric, loaded once at process start
// and passed verbatim to the rating collaborator as system instructions.
type RubricService interface {
	Text() string
}

type rubricService struct {
	text string
}

func NewRubricService(path string) (RubricService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rubric from %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("rubric file %s is empty", path)
	}

	return &rubricService{text: text}, nil
}

func (r *rubricService) Text() string {
	return r.text
}
