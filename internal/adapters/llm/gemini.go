// Package llm contains the oracle adapters: a Gemini client for real
// consultations and a canned mock for local development and tests.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/tianji-app/fortune-api/internal/domain"
)

// GeminiClient implements domain.Oracle via the Gemini API (API-key
// backend, matching the front end this service replaces).
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates the oracle client. The API key is validated for
// presence by config; an empty key here is a programming error.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key must not be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelName: modelName}, nil
}

// Generate implements domain.Oracle. Exactly one network call is made;
// failures and empty replies surface as ErrOracleUnavailable and are
// never retried here.
func (g *GeminiClient) Generate(ctx context.Context, q domain.Query) (string, error) {
	parts := make([]*genai.Part, 0, len(q.Images)+1)
	for _, img := range q.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(q.User))

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	temp := float32(0.7)
	topP := float32(0.9)
	outputTokens := int32(8192)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(q.System, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   outputTokens,
	}

	if q.ThinkingBudget > 0 {
		budget := q.ThinkingBudget
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", domain.ErrOracleUnavailable)
	}

	return text, nil
}
