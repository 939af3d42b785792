package api

import (
	"log/slog"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/service"
)

// ReviewRequestBody is the body of POST /review.
type ReviewRequestBody struct {
	ItemID   string `json:"itemId"   validate:"required"`
	Version  int    `json:"version"  validate:"required,gt=0"`
	Status   string `json:"status"   validate:"required"`
	Reviewer string `json:"reviewer,omitempty"`
	Comment  string `json:"comment,omitempty"`
}

// ReviewResponse acknowledges a recorded moderation decision.
type ReviewResponse struct {
	OK     bool   `json:"ok"`
	ItemID string `json:"itemId"`
	Status string `json:"status"`
}

// PendingItemsResponse is the body of GET /pending.
type PendingItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ModerationHandler serves the moderation dashboard: the pending queue,
// review decisions and catalog statistics.
type ModerationHandler struct {
	reviews service.ReviewService
	stats   service.StatsService
	logger  *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(
	reviews service.ReviewService,
	stats service.StatsService,
	log *slog.Logger,
) *ModerationHandler {
	if reviews == nil {
		panic("reviews cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ModerationHandler{
		reviews: reviews,
		stats:   stats,
		logger:  log.With(slog.String("component", "moderation_handler")),
	}
}

// ListPending handles GET /pending.
func (h *ModerationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviews.ListPending(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to list pending items", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PendingItemsResponse{
		Items: itemsToResponse(items),
	})
}

// SubmitReview handles POST /review.
func (h *ModerationHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var body ReviewRequestBody
	if err := shared.DecodeJSON(r, &body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.reviews.SubmitReview(r.Context(), service.ReviewRequest{
		ItemID:   body.ItemID,
		Version:  body.Version,
		Status:   domain.ItemStatus(body.Status),
		Reviewer: body.Reviewer,
		Comment:  body.Comment,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review recorded",
		slog.String("item_id", result.ItemID),
		slog.String("status", string(result.Status)))

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		OK:     true,
		ItemID: result.ItemID,
		Status: string(result.Status),
	})
}

// ItemStats handles GET /item-stats.
func (h *ModerationHandler) ItemStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to compute item stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, overview)
}
