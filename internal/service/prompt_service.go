package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/events"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// PromptService manages the operator-editable generation prompt template.
//
// Its Get method doubles as the prompt source for the content generator: an
// empty result means no template has been configured and the generator falls
// back to its built-in default.
type PromptService interface {
	// Get returns the configured prompt template, or the empty string when
	// none has been set.
	Get(ctx context.Context) (string, error)

	// Set stores a new prompt template, replacing any previous one. Empty
	// templates are rejected with domain.ErrPromptEmpty so a misconfigured
	// dashboard cannot silently disable generation.
	Set(ctx context.Context, prompt string) error
}

// Verify interface compliance at compile time
var _ PromptService = (*promptServiceImpl)(nil)

type promptServiceImpl struct {
	prompts store.PromptStore
	emitter events.Emitter
	logger  *slog.Logger
}

// NewPromptService creates a PromptService backed by the given prompt store.
// The emitter receives an audit event per template change and may be nil.
func NewPromptService(prompts store.PromptStore, emitter events.Emitter, log *slog.Logger) PromptService {
	if prompts == nil {
		panic("prompts cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &promptServiceImpl{
		prompts: prompts,
		emitter: emitter,
		logger:  log.With(slog.String("component", "prompt_service")),
	}
}

// Get implements PromptService.Get. A prompt row that has never been
// written reads as an empty template, not an error.
func (s *promptServiceImpl) Get(ctx context.Context) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	prompt, err := s.prompts.Get(ctx)
	if err != nil {
		if store.IsNotFoundError(err) {
			return "", nil
		}
		log.Error("failed to load prompt template", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to load prompt template: %w", err)
	}

	return prompt, nil
}

// Set implements PromptService.Set.
func (s *promptServiceImpl) Set(ctx context.Context, prompt string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if prompt == "" {
		return domain.ErrPromptEmpty
	}

	if err := s.prompts.Set(ctx, prompt); err != nil {
		log.Error("failed to store prompt template", slog.String("error", err.Error()))
		return fmt.Errorf("failed to store prompt template: %w", err)
	}

	log.Info("prompt template updated", slog.Int("length", len(prompt)))

	if s.emitter != nil {
		event, eventErr := events.NewEvent(events.EventPromptUpdated, map[string]int{
			"length": len(prompt),
		})
		if eventErr == nil {
			if emitErr := s.emitter.Emit(ctx, event); emitErr != nil {
				log.Warn("failed to emit audit event", slog.String("error", emitErr.Error()))
			}
		}
	}

	return nil
}
