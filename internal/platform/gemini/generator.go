package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/gameforge/gameforge-api/internal/config"
	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/generation"
)

// Generator implements the generation.Generator interface using Google's
// Gemini API to produce content items.
type Generator struct {
	logger *slog.Logger
	config config.LLMConfig

	// prompts supplies the mutable template; the built-in default covers
	// an absent or empty row.
	prompts generation.PromptSource

	client *genai.Client
	model  string
}

// NewGenerator creates a new Gemini-backed item generator.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and output budget
//   - prompts: the injected prompt template source
//
// Returns a properly initialized Generator or an error if initialization fails.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	prompts generation.PromptSource,
) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if prompts == nil {
		return nil, errors.New("prompt source cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:  logger.With(slog.String("component", "gemini_generator")),
		config:  cfg,
		prompts: prompts,
		client:  client,
		model:   cfg.ModelName,
	}, nil
}

// Ensure Generator implements generation.Generator
var _ generation.Generator = (*Generator)(nil)

// GenerateItem implements generation.Generator.
// It issues exactly one single-turn call with a bounded output budget and
// parses the result into a new PENDING item. There is no retry: an
// unparsable response fails this attempt and only re-invocation by a human
// closes the loop.
func (g *Generator) GenerateItem(
	ctx context.Context,
	itemType domain.ItemType,
	lang string,
) (*domain.Item, error) {
	prompt := g.buildPrompt(ctx, itemType, lang)

	g.logger.InfoContext(ctx, "calling text generation service",
		slog.String("model", g.model),
		slog.String("type", string(itemType)),
		slog.String("lang", lang))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: int32(g.config.MaxOutputTokens),
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	item, err := parseItem(text)
	if err != nil {
		g.logger.WarnContext(ctx, "generation output rejected",
			slog.String("error", err.Error()),
			slog.Int("output_length", len(text)))
		return nil, err
	}

	g.logger.InfoContext(ctx, "item generated",
		slog.String("item_id", item.ID),
		slog.String("type", string(item.Type)))
	return item, nil
}

// buildPrompt loads the configured template and substitutes placeholders.
// A store failure falls back to the built-in default so generation keeps
// working while the config store is unavailable.
func (g *Generator) buildPrompt(ctx context.Context, itemType domain.ItemType, lang string) string {
	template, err := g.prompts.Get(ctx)
	if err != nil {
		g.logger.WarnContext(ctx, "failed to load prompt template, using built-in default",
			slog.String("error", err.Error()))
		template = ""
	}

	return generation.RenderPrompt(template, string(itemType), lang)
}

// extractText pulls the generated text out of the service envelope.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidFormat)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidFormat)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidFormat)
	}

	return text, nil
}

// parseItem parses the generated text as an item envelope and assigns a
// fresh identity. The envelope must carry non-empty type, lang and spec.
func parseItem(text string) (*domain.Item, error) {
	var envelope itemEnvelope
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidFormat, err)
	}

	if envelope.Type == "" || envelope.Lang == "" || len(envelope.Spec) == 0 {
		return nil, fmt.Errorf("%w: envelope must contain type, lang and spec",
			generation.ErrInvalidFormat)
	}

	if !domain.IsValidItemType(envelope.Type) {
		return nil, fmt.Errorf("%w: unknown item type %q",
			generation.ErrInvalidFormat, envelope.Type)
	}

	item, err := domain.NewItem(domain.ItemType(envelope.Type), envelope.Lang, envelope.Spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidFormat, err)
	}

	return item, nil
}

// stripCodeFence removes a surrounding markdown code fence. Models sometimes
// wrap the JSON even when told not to.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
