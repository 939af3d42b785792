// Package api provides the HTTP handlers for the content pipeline.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/events"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/task"
)

// BatchDispatcher kicks off an asynchronous generation batch.
type BatchDispatcher interface {
	RequestBatch(
		ctx context.Context,
		count int,
		itemType domain.ItemType,
		lang string,
	) (task.BatchHandle, error)
}

// RequestItemsRequest is the body of POST /request-items. Type and Lang are
// optional; the dispatcher fills in pipeline defaults.
type RequestItemsRequest struct {
	Count int    `json:"count" validate:"required,gt=0"`
	Type  string `json:"type,omitempty"`
	Lang  string `json:"lang,omitempty"`
}

// RequestItemsResponse acknowledges a dispatched batch. ExecutionArn is an
// opaque handle for correlating the batch in logs.
type RequestItemsResponse struct {
	OK           bool   `json:"ok"`
	ExecutionArn string `json:"executionArn"`
}

// GenerationHandler handles generation batch requests.
type GenerationHandler struct {
	dispatcher   BatchDispatcher
	emitter      events.Emitter
	maxBatchSize int
	logger       *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler. The emitter may be nil.
func NewGenerationHandler(
	dispatcher BatchDispatcher,
	emitter events.Emitter,
	maxBatchSize int,
	log *slog.Logger,
) *GenerationHandler {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if maxBatchSize <= 0 {
		panic("maxBatchSize must be positive")
	}
	if log == nil {
		log = slog.Default()
	}

	return &GenerationHandler{
		dispatcher:   dispatcher,
		emitter:      emitter,
		maxBatchSize: maxBatchSize,
		logger:       log.With(slog.String("component", "generation_handler")),
	}
}

// RequestItems handles POST /request-items. It validates the request,
// dispatches the batch and returns immediately; generation completes in the
// background.
func (h *GenerationHandler) RequestItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RequestItemsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "count must be a positive integer")
		return
	}
	if req.Count > h.maxBatchSize {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("count must not exceed %d", h.maxBatchSize))
		return
	}
	if req.Type != "" && !domain.IsValidItemType(req.Type) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("unsupported item type %q", req.Type))
		return
	}

	handle, err := h.dispatcher.RequestBatch(
		r.Context(),
		req.Count,
		domain.ItemType(req.Type),
		req.Lang,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to dispatch generation batch", err)
		return
	}

	log.Info("generation batch accepted",
		slog.String("batch_id", handle.ID),
		slog.Int("dispatched", handle.Dispatched))

	h.emitBatchEvent(r.Context(), log, req, handle)

	shared.RespondWithJSON(w, r, http.StatusOK, RequestItemsResponse{
		OK:           true,
		ExecutionArn: handle.ID,
	})
}

// emitBatchEvent publishes a batch_requested audit event, best effort.
func (h *GenerationHandler) emitBatchEvent(
	ctx context.Context,
	log *slog.Logger,
	req RequestItemsRequest,
	handle task.BatchHandle,
) {
	if h.emitter == nil {
		return
	}

	event, err := events.NewEvent(events.EventBatchRequested, map[string]interface{}{
		"batchId":    handle.ID,
		"count":      req.Count,
		"dispatched": handle.Dispatched,
		"type":       req.Type,
		"lang":       req.Lang,
	})
	if err != nil {
		log.Warn("failed to build audit event", slog.String("error", err.Error()))
		return
	}

	if err := h.emitter.Emit(ctx, event); err != nil {
		log.Warn("failed to emit audit event", slog.String("error", err.Error()))
	}
}
