package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"NOCTIMIND_BACK-END/internal/config"
)

// Engine maps dream text to a fixed-length vector using Google's Gemini
// embedding API. Vectors come back unit-normalized from the model and are
// stored verbatim.
type Engine struct {
	client *genai.Client
	model  string
}

// NewEngine creates a new embedding engine.
func NewEngine(ctx context.Context, cfg *config.EmbeddingConfig) (*Engine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-embedding-001"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Engine{client: client, model: model}, nil
}

// Embed generates an embedding for a single dream text.
func (e *Engine) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := e.client.Models.EmbedContent(ctx,
		e.model,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "SEMANTIC_SIMILARITY",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("GenAI embed failed: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return result.Embeddings[0].Values, nil
}
