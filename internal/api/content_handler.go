package api

import (
	"log/slog"
	"net/http"

	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/service"
)

// ContentHandler serves approved content to players.
type ContentHandler struct {
	picker service.PickerService
	logger *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(picker service.PickerService, log *slog.Logger) *ContentHandler {
	if picker == nil {
		panic("picker cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ContentHandler{
		picker: picker,
		logger: log.With(slog.String("component", "content_handler")),
	}
}

// RandomApproved handles GET /random-approved.
func (h *ContentHandler) RandomApproved(w http.ResponseWriter, r *http.Request) {
	item, err := h.picker.RandomApproved(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}
