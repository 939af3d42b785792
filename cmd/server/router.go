package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/gameforge/gameforge-api/internal/api"
	apimiddleware "github.com/gameforge/gameforge-api/internal/api/middleware"
	"github.com/gameforge/gameforge-api/internal/api/shared"
	"github.com/gameforge/gameforge-api/internal/config"
	"github.com/gameforge/gameforge-api/internal/events"
	"github.com/gameforge/gameforge-api/internal/service"
	"github.com/gameforge/gameforge-api/internal/task"
)

// routerDeps carries everything buildRouter needs to construct handlers.
type routerDeps struct {
	cfg           *config.Config
	logger        *slog.Logger
	orchestrator  *task.Orchestrator
	emitter       events.Emitter
	reviewService service.ReviewService
	statsService  service.StatsService
	pickerService service.PickerService
	promptService service.PromptService
}

// buildRouter configures the application router with all middleware and
// routes. The API is CORS-open because dashboard and player frontends are
// served from separate origins.
func buildRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(cors.AllowAll().Handler)

	generationHandler := api.NewGenerationHandler(
		deps.orchestrator,
		deps.emitter,
		deps.cfg.Generation.MaxBatchSize,
		deps.logger,
	)
	moderationHandler := api.NewModerationHandler(deps.reviewService, deps.statsService, deps.logger)
	contentHandler := api.NewContentHandler(deps.pickerService, deps.logger)
	promptHandler := api.NewPromptHandler(deps.promptService, deps.logger)

	r.Post("/request-items", generationHandler.RequestItems)
	r.Get("/pending", moderationHandler.ListPending)
	r.Post("/review", moderationHandler.SubmitReview)
	r.Get("/item-stats", moderationHandler.ItemStats)
	r.Get("/random-approved", contentHandler.RandomApproved)
	r.Get("/prompt-config", promptHandler.GetPrompt)
	r.Post("/prompt-config", promptHandler.SetPrompt)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
