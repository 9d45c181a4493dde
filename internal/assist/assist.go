package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Service turns assist requests into LLM completions.
type Service struct {
	client Client
}

// NewService creates an assist service backed by the given client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// GenerateDescription produces suggested resume text for the request. The
// request type selects the system prompt; optional context (e.g. the
// surrounding entry) is appended after the user's prompt.
func (s *Service) GenerateDescription(ctx context.Context, req *types.GenerateDescriptionRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is required")
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid assist request: %w", err)
	}

	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("model returned empty description")
	}
	return text, nil
}

// BuildPrompt assembles the full prompt sent to the model.
func BuildPrompt(req *types.GenerateDescriptionRequest) (string, error) {
	system, err := systemPrompt(req.Type)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\nRequest: ")
	b.WriteString(strings.TrimSpace(req.Prompt))
	if ctx := strings.TrimSpace(req.Context); ctx != "" {
		b.WriteString("\n\nContext: ")
		b.WriteString(ctx)
	}
	return b.String(), nil
}
