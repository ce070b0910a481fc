package services

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// openRouterService is the alternate rating collaborator, speaking the
// chat-completions dialect through OpenRouter.
type openRouterService struct {
	client  *resty.Client
	apiKey  string
	model   string
	baseURL string
}

func NewOpenRouterService(apiKey, model, baseURL string) ChatProvider {
	return &openRouterService{
		client:  resty.New(),
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
	}
}

// GenerateText implements ChatProvider.
func (s *openRouterService) GenerateText(ctx context.Context, system, task string, temperature float32) (string, error) {
	var messages []map[string]string
	if system != "" {
		messages = append(messages, map[string]string{"role": "system", "content": system})
	}
	messages = append(messages, map[string]string{"role": "user", "content": task})

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":       s.model,
			"messages":    messages,
			"temperature": temperature,
		}).
		Post(s.baseURL + "/chat/completions")

	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("no text content in openrouter response")
	}

	return content, nil
}

// GenerateTextWithRetry implements ChatProvider.
func (s *openRouterService) GenerateTextWithRetry(ctx context.Context, system, task string, temperature float32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := s.GenerateText(ctx, system, task, temperature)
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			log.Printf("⚠️  OpenRouter attempt %d failed: %v. Retrying...\n", attempt, err)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}
