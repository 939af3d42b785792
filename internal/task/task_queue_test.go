package task

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mockTask implements the Task interface for testing
type mockTask struct {
	id       uuid.UUID
	taskType string
	status   TaskStatus
	execFn   func(ctx context.Context) error
}

func (m *mockTask) ID() uuid.UUID      { return m.id }
func (m *mockTask) Type() string       { return m.taskType }
func (m *mockTask) Status() TaskStatus { return m.status }

func (m *mockTask) Execute(ctx context.Context) error {
	if m.execFn != nil {
		return m.execFn(ctx)
	}
	return nil
}

func newMockTask() *mockTask {
	return &mockTask{
		id:       uuid.New(),
		taskType: "mock",
		status:   TaskStatusPending,
	}
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestNewTaskQueue(t *testing.T) {
	queue := NewTaskQueue(10, setupTestLogger())

	assert.NotNil(t, queue)
	assert.Equal(t, 10, cap(queue.tasks))
	assert.False(t, queue.closed)
}

func TestEnqueue(t *testing.T) {
	queue := NewTaskQueue(2, setupTestLogger())

	assert.NoError(t, queue.Enqueue(newMockTask()))
	assert.NoError(t, queue.Enqueue(newMockTask()))

	// Queue full
	err := queue.Enqueue(newMockTask())
	assert.ErrorIs(t, err, ErrQueueFull)

	// Dequeue one item to make space
	<-queue.tasks
	assert.NoError(t, queue.Enqueue(newMockTask()))
}

func TestEnqueueAfterClose(t *testing.T) {
	queue := NewTaskQueue(2, setupTestLogger())
	queue.Close()

	err := queue.Enqueue(newMockTask())
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	queue := NewTaskQueue(2, setupTestLogger())
	queue.Close()
	assert.NotPanics(t, func() { queue.Close() })
}

func TestRunnerProcessesTasks(t *testing.T) {
	queue := NewTaskQueue(10, setupTestLogger())
	runner := NewRunner(queue, RunnerConfig{WorkerCount: 3}, setupTestLogger())

	done := make(chan uuid.UUID, 5)
	for i := 0; i < 5; i++ {
		task := newMockTask()
		task.execFn = func(ctx context.Context) error {
			done <- task.id
			return nil
		}
		assert.NoError(t, queue.Enqueue(task))
	}

	runner.Start()
	defer runner.Stop()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 5; i++ {
		select {
		case id := <-done:
			seen[id] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for task %d", i)
		}
	}
	assert.Len(t, seen, 5)
}

func TestRunnerIsolatesTaskFailures(t *testing.T) {
	queue := NewTaskQueue(10, setupTestLogger())
	runner := NewRunner(queue, RunnerConfig{WorkerCount: 1}, setupTestLogger())

	failing := newMockTask()
	failing.execFn = func(ctx context.Context) error {
		return assert.AnError
	}

	succeeded := make(chan struct{})
	sibling := newMockTask()
	sibling.execFn = func(ctx context.Context) error {
		close(succeeded)
		return nil
	}

	assert.NoError(t, queue.Enqueue(failing))
	assert.NoError(t, queue.Enqueue(sibling))

	runner.Start()
	defer runner.Stop()

	select {
	case <-succeeded:
		// Sibling ran despite the earlier failure.
	case <-time.After(2 * time.Second):
		t.Fatal("sibling task did not run after failure")
	}
}

func TestRunnerDefaultsInvalidWorkerCount(t *testing.T) {
	queue := NewTaskQueue(1, setupTestLogger())
	runner := NewRunner(queue, RunnerConfig{WorkerCount: 0}, setupTestLogger())
	assert.Equal(t, 1, runner.workerCount)
}
