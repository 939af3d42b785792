package generation

import "errors"

// Common errors returned by the generation package.
var (
	// ErrGenerationFailed is returned when item generation fails for any
	// general reason.
	ErrGenerationFailed = errors.New("failed to generate content item")

	// ErrInvalidFormat is returned when the model output cannot be parsed
	// into the expected item envelope. Nothing is persisted; there is no
	// automatic retry.
	ErrInvalidFormat = errors.New("unparsable generation output")

	// ErrIncompleteItem is returned when a parsed item is missing one of
	// the required type, lang or spec fields.
	ErrIncompleteItem = errors.New("generated item is incomplete")

	// ErrContentBlocked is returned when the model blocks the content due
	// to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrImageGeneration is returned by image generators when no image can
	// be produced. Callers recover locally with a static fallback; this
	// error never reaches a client.
	ErrImageGeneration = errors.New("image generation failed")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
