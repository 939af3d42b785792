package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/gameforge/gameforge-api/internal/config"
	"github.com/gameforge/gameforge-api/internal/generation"
)

// ImageGenerator implements the generation.ImageGenerator interface using
// Google's Imagen models via the Gemini API.
type ImageGenerator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewImageGenerator creates a new Imagen-backed image generator.
func NewImageGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*ImageGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &ImageGenerator{
		logger: logger.With(slog.String("component", "gemini_image_generator")),
		client: client,
		model:  cfg.ImageModel,
	}, nil
}

// Ensure ImageGenerator implements generation.ImageGenerator
var _ generation.ImageGenerator = (*ImageGenerator)(nil)

// GenerateImage implements generation.ImageGenerator.
// Exactly one attempt; the caller handles fallback on any failure.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt cannot be empty", generation.ErrImageGeneration)
	}

	g.logger.InfoContext(ctx, "calling image generation service",
		slog.String("model", g.model))

	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrImageGeneration, err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("%w: service returned no image", generation.ErrImageGeneration)
	}

	image := resp.GeneratedImages[0].Image
	if image == nil || len(image.ImageBytes) == 0 {
		return nil, fmt.Errorf("%w: generated image is empty", generation.ErrImageGeneration)
	}

	g.logger.InfoContext(ctx, "image generated",
		slog.Int("bytes", len(image.ImageBytes)))
	return image.ImageBytes, nil
}
