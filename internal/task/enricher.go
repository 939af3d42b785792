package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/generation"
)

// jigsawImagePrompt is the fixed creative prompt used for every jigsaw
// image. Variety comes from the model, not the prompt.
const jigsawImagePrompt = "A vibrant, colorful illustration suitable for a children's jigsaw puzzle: " +
	"a whimsical landscape with animals, plants and playful details, " +
	"flat cartoon style, high contrast, no text"

// fallbackImageURLs is the fixed backup set substituted when image
// generation fails. One of these is picked uniformly at random.
var fallbackImageURLs = []string{
	"https://images.gameforge.dev/fallback/jigsaw-meadow.png",
	"https://images.gameforge.dev/fallback/jigsaw-ocean.png",
	"https://images.gameforge.dev/fallback/jigsaw-forest.png",
	"https://images.gameforge.dev/fallback/jigsaw-space.png",
}

// AssetUploader stores generated image bytes and returns their public URL.
type AssetUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageEnricher rewrites spec.imageUrl on jigsaw items. It makes exactly
// one image-generation attempt and falls back to a static URL on any
// failure: never retried, never surfaced, never blocking item creation.
type ImageEnricher struct {
	images generation.ImageGenerator
	assets AssetUploader
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewImageEnricher creates an enricher backed by the given image generator
// and asset uploader.
func NewImageEnricher(
	images generation.ImageGenerator,
	assets AssetUploader,
	logger *slog.Logger,
) *ImageEnricher {
	if logger == nil {
		logger = slog.Default()
	}

	return &ImageEnricher{
		images: images,
		assets: assets,
		logger: logger.With(slog.String("component", "image_enricher")),
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}
}

// Ensure ImageEnricher implements Enricher
var _ Enricher = (*ImageEnricher)(nil)

// Enrich implements Enricher. Non-jigsaw items pass through untouched.
func (e *ImageEnricher) Enrich(ctx context.Context, item *domain.Item) error {
	if item.Type != domain.ItemTypeJigsaw {
		return nil
	}

	var spec map[string]any
	if err := json.Unmarshal(item.Spec, &spec); err != nil {
		return fmt.Errorf("%w: jigsaw spec is not a JSON object: %v",
			generation.ErrInvalidFormat, err)
	}

	spec["imageUrl"] = e.imageURL(ctx, item.ID)

	updated, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal enriched spec: %w", err)
	}

	item.Spec = updated
	return nil
}

// imageURL makes the single generate-and-upload attempt and returns either
// the uploaded asset's public URL or a random fallback URL.
func (e *ImageEnricher) imageURL(ctx context.Context, itemID string) string {
	data, err := e.images.GenerateImage(ctx, jigsawImagePrompt)
	if err != nil {
		e.logger.WarnContext(ctx, "image generation failed, using fallback",
			"error", err, "item_id", itemID)
		return e.randomFallbackURL()
	}

	url, err := e.assets.Upload(ctx, "items/"+itemID+".png", data, "image/png")
	if err != nil {
		e.logger.WarnContext(ctx, "asset upload failed, using fallback",
			"error", err, "item_id", itemID)
		return e.randomFallbackURL()
	}

	return url
}

// randomFallbackURL picks one of the fixed backup URLs uniformly.
func (e *ImageEnricher) randomFallbackURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fallbackImageURLs[e.rng.Intn(len(fallbackImageURLs))]
}
