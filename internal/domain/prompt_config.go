package domain

import (
	"fmt"
	"time"
)

// PromptConfigKey is the constant key of the single prompt configuration row.
const PromptConfigKey = "generation_prompt"

// ErrPromptEmpty is returned when an empty prompt template is submitted.
// Wraps ErrValidation like the item sentinels.
var ErrPromptEmpty = fmt.Errorf("%w: prompt template cannot be empty", ErrValidation)

// PromptConfig holds the mutable generation prompt template. There is exactly
// one row, overwritten in place on each update; the template carries
// {{type}} and {{lang}} placeholders substituted at generation time.
type PromptConfig struct {
	Key       string    `json:"key"`
	Prompt    string    `json:"prompt"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPromptConfig creates the prompt configuration row for the given template.
// Returns ErrPromptEmpty if the template is empty.
func NewPromptConfig(prompt string) (*PromptConfig, error) {
	if prompt == "" {
		return nil, ErrPromptEmpty
	}

	return &PromptConfig{
		Key:       PromptConfigKey,
		Prompt:    prompt,
		UpdatedAt: time.Now().UTC(),
	}, nil
}
