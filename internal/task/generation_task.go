package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/generation"
)

// Common errors.
var (
	ErrNilGenerator = errors.New("generator cannot be nil")
	ErrNilEnricher  = errors.New("enricher cannot be nil")
	ErrNilStore     = errors.New("item store cannot be nil")
	ErrNilLogger    = errors.New("logger cannot be nil")
)

// ItemWriter is the narrow slice of the item store a generation task needs.
type ItemWriter interface {
	// Put writes one new (itemId, version) row unconditionally.
	Put(ctx context.Context, item *domain.Item) error
}

// Enricher applies type-specific post-processing to a generated item before
// it is persisted. Enrichment never fails the task.
type Enricher interface {
	// Enrich mutates the item in place. Jigsaw items get their
	// spec.imageUrl rewritten; other types pass through untouched.
	Enrich(ctx context.Context, item *domain.Item) error
}

// ItemGenerationTask implements the Task interface for generating and
// persisting one content item. Each task carries the wall-clock deadline of
// its batch; exceeding it fails this task without touching siblings.
type ItemGenerationTask struct {
	id        uuid.UUID
	batchID   string
	itemType  domain.ItemType
	lang      string
	deadline  time.Time
	generator generation.Generator
	enricher  Enricher
	items     ItemWriter
	logger    *slog.Logger
	status    TaskStatus
}

// NewItemGenerationTask creates a new item generation task.
func NewItemGenerationTask(
	batchID string,
	itemType domain.ItemType,
	lang string,
	deadline time.Time,
	generator generation.Generator,
	enricher Enricher,
	items ItemWriter,
	logger *slog.Logger,
) (*ItemGenerationTask, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if enricher == nil {
		return nil, ErrNilEnricher
	}
	if items == nil {
		return nil, ErrNilStore
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &ItemGenerationTask{
		id:        uuid.New(),
		batchID:   batchID,
		itemType:  itemType,
		lang:      lang,
		deadline:  deadline,
		generator: generator,
		enricher:  enricher,
		items:     items,
		logger: logger.With(
			"task_type", TaskTypeItemGeneration,
			"batch_id", batchID,
			"item_type", string(itemType),
			"lang", lang,
		),
		status: TaskStatusPending,
	}, nil
}

// ID returns the task's unique identifier.
func (t *ItemGenerationTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier.
func (t *ItemGenerationTask) Type() string {
	return TaskTypeItemGeneration
}

// Status returns the current task status.
func (t *ItemGenerationTask) Status() TaskStatus {
	return t.status
}

// Execute runs the generation pipeline for one item: generate, enrich,
// validate, persist. No partial item is ever written; every step before
// Put either completes or the task fails with nothing stored.
func (t *ItemGenerationTask) Execute(ctx context.Context) error {
	t.status = TaskStatusProcessing
	t.logger.Info("starting item generation task")

	// The batch budget is the only cancellation mechanism a task has.
	if !t.deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, t.deadline)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		t.status = TaskStatusFailed
		return fmt.Errorf("task cancelled before start: %w", err)
	}

	item, err := t.generator.GenerateItem(ctx, t.itemType, t.lang)
	if err != nil {
		t.status = TaskStatusFailed
		t.logger.Error("failed to generate item", "error", err)
		return fmt.Errorf("failed to generate item: %w", err)
	}

	// Image failures are recovered inside the enricher; an error here means
	// the spec payload itself was unusable.
	if err := t.enricher.Enrich(ctx, item); err != nil {
		t.status = TaskStatusFailed
		t.logger.Error("failed to enrich item", "error", err, "item_id", item.ID)
		return fmt.Errorf("failed to enrich item: %w", err)
	}

	if item.Type == "" || item.Lang == "" || len(item.Spec) == 0 {
		t.status = TaskStatusFailed
		return fmt.Errorf("%w: item %s", generation.ErrIncompleteItem, item.ID)
	}

	if err := t.items.Put(ctx, item); err != nil {
		t.status = TaskStatusFailed
		t.logger.Error("failed to persist item", "error", err, "item_id", item.ID)
		return fmt.Errorf("failed to persist item: %w", err)
	}

	t.status = TaskStatusCompleted
	t.logger.Info("item generation task completed", "item_id", item.ID)
	return nil
}
