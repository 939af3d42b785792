package generation

import (
	"context"

	"github.com/gameforge/gameforge-api/internal/domain"
)

// Generator defines the interface for producing one content item from the
// external text-generation service. It is the boundary between the task
// pipeline and the AI provider.
type Generator interface {
	// GenerateItem issues one single-turn generation call for the given
	// content type and language and parses the result into a new PENDING
	// item with a freshly assigned identity.
	//
	// Returns ErrInvalidFormat when the model output cannot be parsed and
	// ErrIncompleteItem when required fields are missing; in both cases no
	// item is produced.
	GenerateItem(ctx context.Context, itemType domain.ItemType, lang string) (*domain.Item, error)
}

// ImageGenerator produces a single image for item enrichment.
type ImageGenerator interface {
	// GenerateImage renders one image for the given creative prompt and
	// returns its raw bytes. Returns ErrImageGeneration when the service
	// fails or returns no image.
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// PromptSource supplies the current generation prompt template. It is an
// injected dependency (backed by the prompt configuration store in
// production) so tests can substitute a fake without global state.
type PromptSource interface {
	// Get returns the template, or an empty string when none is configured.
	Get(ctx context.Context) (string, error)
}
