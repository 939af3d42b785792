package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gameforge/gameforge-api/internal/domain"
)

func newTestOrchestrator(queueSize int, gen *fakeGenerator, items *memoryItemWriter) (*Orchestrator, *TaskQueue) {
	queue := NewTaskQueue(queueSize, setupTestLogger())
	orch := NewOrchestrator(queue, gen, noopEnricher{}, items, 15*time.Minute, setupTestLogger())
	return orch, queue
}

func TestRequestBatchDispatchesCountTasks(t *testing.T) {
	gen := &fakeGenerator{}
	items := &memoryItemWriter{}
	orch, queue := newTestOrchestrator(10, gen, items)

	handle, err := orch.RequestBatch(context.Background(), 3, domain.ItemTypeQuizMCQ, "en")
	require.NoError(t, err)

	assert.Regexp(t, `^batch_[0-9a-f-]{36}$`, handle.ID)
	assert.Equal(t, 3, handle.Dispatched)
	assert.Len(t, queue.tasks, 3)
}

func TestRequestBatchAppliesDefaults(t *testing.T) {
	gen := &fakeGenerator{}
	items := &memoryItemWriter{}
	orch, queue := newTestOrchestrator(10, gen, items)

	_, err := orch.RequestBatch(context.Background(), 1, "", "")
	require.NoError(t, err)

	task := (<-queue.GetChannel()).(*ItemGenerationTask)
	assert.Equal(t, DefaultItemType, task.itemType)
	assert.Equal(t, DefaultLang, task.lang)
}

func TestRequestBatchReturnsImmediately(t *testing.T) {
	gen := &fakeGenerator{}
	items := &memoryItemWriter{}
	orch, _ := newTestOrchestrator(10, gen, items)

	// No runner is draining the queue; dispatch must not block on
	// task execution.
	start := time.Now()
	_, err := orch.RequestBatch(context.Background(), 5, domain.ItemTypeJigsaw, "fr")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, gen.callCount(), "dispatch must not invoke the generator synchronously")
}

func TestRequestBatchQueueOverflow(t *testing.T) {
	gen := &fakeGenerator{}
	items := &memoryItemWriter{}
	orch, _ := newTestOrchestrator(2, gen, items)

	handle, err := orch.RequestBatch(context.Background(), 5, domain.ItemTypeQuizMCQ, "en")
	assert.ErrorIs(t, err, ErrQueueFull)
	assert.Equal(t, 2, handle.Dispatched)
}

func TestBatchEndToEnd(t *testing.T) {
	gen := &fakeGenerator{}
	items := &memoryItemWriter{}
	orch, queue := newTestOrchestrator(10, gen, items)

	runner := NewRunner(queue, RunnerConfig{WorkerCount: 4}, setupTestLogger())
	runner.Start()
	defer runner.Stop()

	handle, err := orch.RequestBatch(context.Background(), 4, domain.ItemTypeQuizMCQ, "en")
	require.NoError(t, err)
	assert.Equal(t, 4, handle.Dispatched)

	// Completion is observable only through the item store.
	assert.Eventually(t, func() bool {
		return len(items.all()) == 4
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, 4, gen.callCount())
	ids := make(map[string]bool)
	for _, item := range items.all() {
		assert.Equal(t, domain.ItemTypeQuizMCQ, item.Type)
		assert.Equal(t, domain.ItemStatusPending, item.Status)
		assert.Equal(t, 1, item.Version)
		ids[item.ID] = true
	}
	assert.Len(t, ids, 4, "each success yields exactly one new row")
}
