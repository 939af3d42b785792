package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/events"
	"github.com/gameforge/gameforge-api/internal/platform/logger"
	"github.com/gameforge/gameforge-api/internal/store"
)

// ReviewRequest carries a moderation decision for a single item version.
type ReviewRequest struct {
	ItemID   string
	Version  int
	Status   domain.ItemStatus
	Reviewer string
	Comment  string
}

// ReviewResult echoes the applied decision back to the caller.
type ReviewResult struct {
	ItemID string
	Status domain.ItemStatus
}

// pendingListLimit caps a single moderation queue page.
const pendingListLimit = 100

// ReviewService applies human moderation decisions to generated items.
type ReviewService interface {
	// ListPending returns the oldest pending items first so moderators
	// drain the queue in arrival order. At most one page is returned.
	ListPending(ctx context.Context) ([]*domain.Item, error)

	// SubmitReview records an approve or reject decision for the item
	// version named in the request.
	//
	// Returns:
	//   - (*ReviewResult, nil): the decision was persisted
	//   - (nil, *ValidationError): the request named no item, a non-positive
	//     version, or a status other than APPROVED or REJECTED
	//   - (nil, ErrItemNotFound): the item version does not exist
	//   - (nil, error): any other store failure
	//
	// Decisions are last-write-wins. A second review of the same item
	// version overwrites the first without any prior-status check.
	SubmitReview(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
}

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

type reviewServiceImpl struct {
	items   store.ItemStore
	emitter events.Emitter
	logger  *slog.Logger
}

// NewReviewService creates a ReviewService backed by the given item store.
// The emitter receives an audit event per recorded decision and may be nil.
func NewReviewService(items store.ItemStore, emitter events.Emitter, log *slog.Logger) ReviewService {
	if items == nil {
		panic("items cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &reviewServiceImpl{
		items:   items,
		emitter: emitter,
		logger:  log.With(slog.String("component", "review_service")),
	}
}

// ListPending implements ReviewService.ListPending.
func (s *reviewServiceImpl) ListPending(ctx context.Context) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	items, err := s.items.QueryByStatus(
		ctx,
		domain.ItemStatusPending,
		pendingListLimit,
		store.OrderAscending,
	)
	if err != nil {
		log.Error("failed to list pending items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list pending items: %w", err)
	}

	return items, nil
}

// SubmitReview implements ReviewService.SubmitReview.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	req ReviewRequest,
) (*ReviewResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if req.ItemID == "" {
		return nil, NewValidationError("itemId", "must not be empty")
	}
	if req.Version <= 0 {
		return nil, NewValidationError("version", "must be a positive integer")
	}
	if !domain.IsTerminalStatus(req.Status) {
		return nil, NewValidationError(
			"status",
			fmt.Sprintf("must be %s or %s", domain.ItemStatusApproved, domain.ItemStatusRejected),
		)
	}

	// Confirm the row exists before writing so a review of a missing item
	// fails without touching the store. UpdateStatus repeats the check at
	// the row level, so a row deleted between the two calls still maps to
	// the same not-found error.
	if _, err := s.items.GetByID(ctx, req.ItemID, req.Version); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			log.Warn("review targeted a missing item",
				slog.String("item_id", req.ItemID),
				slog.Int("version", req.Version))
			return nil, fmt.Errorf("%w: %s version %d", ErrItemNotFound, req.ItemID, req.Version)
		}

		log.Error("failed to load item for review",
			slog.String("error", err.Error()),
			slog.String("item_id", req.ItemID))
		return nil, fmt.Errorf("failed to load item for review: %w", err)
	}

	err := s.items.UpdateStatus(ctx, req.ItemID, req.Version, req.Status, req.Reviewer, req.Comment)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return nil, fmt.Errorf("%w: %s version %d", ErrItemNotFound, req.ItemID, req.Version)
		}

		log.Error("failed to persist review decision",
			slog.String("error", err.Error()),
			slog.String("item_id", req.ItemID))
		return nil, fmt.Errorf("failed to persist review decision: %w", err)
	}

	log.Info("review decision applied",
		slog.String("item_id", req.ItemID),
		slog.Int("version", req.Version),
		slog.String("status", string(req.Status)))

	s.emitAudit(ctx, log, req)

	return &ReviewResult{ItemID: req.ItemID, Status: req.Status}, nil
}

// emitAudit publishes a review_recorded event. Audit delivery is best effort
// and never fails the moderation request.
func (s *reviewServiceImpl) emitAudit(ctx context.Context, log *slog.Logger, req ReviewRequest) {
	if s.emitter == nil {
		return
	}

	event, err := events.NewEvent(events.EventReviewRecorded, map[string]interface{}{
		"itemId":   req.ItemID,
		"version":  req.Version,
		"status":   req.Status,
		"reviewer": req.Reviewer,
	})
	if err != nil {
		log.Warn("failed to build audit event", slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.Emit(ctx, event); err != nil {
		log.Warn("failed to emit audit event", slog.String("error", err.Error()))
	}
}
