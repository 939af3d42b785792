package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gameforge/gameforge-api/internal/domain"
	"github.com/gameforge/gameforge-api/internal/generation"
)

// Batch defaults applied when the request omits type or lang.
const (
	DefaultItemType = domain.ItemTypeWordSearch
	DefaultLang     = "en"
)

// BatchHandle is the opaque result of a batch request. It identifies the
// batch but offers no way to await or cancel it; callers observe progress
// by querying the item store.
type BatchHandle struct {
	// ID identifies the batch, in the form batch_<uuid>.
	ID string

	// Dispatched is the number of tasks actually enqueued. It falls short
	// of the requested count only when the queue overflows.
	Dispatched int
}

// Orchestrator expands a batch request into independent generation tasks.
// It is the pipeline's only coordination primitive: it fans out and
// returns, with no synchronous success/failure aggregation.
type Orchestrator struct {
	queue       TaskQueueWriter
	generator   generation.Generator
	enricher    Enricher
	items       ItemWriter
	batchBudget time.Duration
	logger      *slog.Logger
}

// NewOrchestrator creates an orchestrator that enqueues tasks on the given
// queue. batchBudget is the shared wall-clock deadline for every task of a
// batch.
func NewOrchestrator(
	queue TaskQueueWriter,
	generator generation.Generator,
	enricher Enricher,
	items ItemWriter,
	batchBudget time.Duration,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		queue:       queue,
		generator:   generator,
		enricher:    enricher,
		items:       items,
		batchBudget: batchBudget,
		logger:      logger.With(slog.String("component", "orchestrator")),
	}
}

// RequestBatch expands the request into count task descriptors and enqueues
// them for concurrent execution. It returns immediately with an opaque
// handle; a single task's failure or timeout never aborts or delays its
// siblings.
func (o *Orchestrator) RequestBatch(
	ctx context.Context,
	count int,
	itemType domain.ItemType,
	lang string,
) (BatchHandle, error) {
	if itemType == "" {
		itemType = DefaultItemType
	}
	if lang == "" {
		lang = DefaultLang
	}

	handle := BatchHandle{ID: "batch_" + uuid.NewString()}
	deadline := time.Now().Add(o.batchBudget)

	log := o.logger.With(
		"batch_id", handle.ID,
		"count", count,
		"item_type", string(itemType),
		"lang", lang,
	)

	for i := 0; i < count; i++ {
		t, err := NewItemGenerationTask(
			handle.ID, itemType, lang, deadline,
			o.generator, o.enricher, o.items, o.logger,
		)
		if err != nil {
			return handle, err
		}

		if err := o.queue.Enqueue(t); err != nil {
			// Siblings already enqueued keep running; the handle reports
			// how many made it.
			log.Error("failed to enqueue generation task",
				"error", err, "task_index", i)
			return handle, err
		}

		handle.Dispatched++
	}

	log.Info("batch dispatched")
	return handle, nil
}
