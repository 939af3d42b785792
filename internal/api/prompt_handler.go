package api

import (
	"log/slog"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/service"
)

// PromptConfigResponse is the body of GET /prompt-config. Prompt is the
// empty string when no template has been configured.
type PromptConfigResponse struct {
	Prompt string `json:"prompt"`
}

// SetPromptRequest is the body of POST /prompt-config.
type SetPromptRequest struct {
	Prompt string `json:"prompt"`
}

// SetPromptResponse acknowledges a stored template.
type SetPromptResponse struct {
	OK bool `json:"ok"`
}

// PromptHandler manages the generation prompt template over HTTP.
type PromptHandler struct {
	prompts service.PromptService
	logger  *slog.Logger
}

// NewPromptHandler creates a PromptHandler.
func NewPromptHandler(prompts service.PromptService, log *slog.Logger) *PromptHandler {
	if prompts == nil {
		panic("prompts cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PromptHandler{
		prompts: prompts,
		logger:  log.With(slog.String("component", "prompt_handler")),
	}
}

// GetPrompt handles GET /prompt-config.
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.prompts.Get(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to load prompt config", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PromptConfigResponse{Prompt: prompt})
}

// SetPrompt handles POST /prompt-config.
func (h *PromptHandler) SetPrompt(w http.ResponseWriter, r *http.Request) {
	var req SetPromptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.prompts.Set(r.Context(), req.Prompt); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SetPromptResponse{OK: true})
}
