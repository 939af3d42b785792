package task

import (
	"context"
	"log/slog"
	"sync"
)

// RunnerConfig holds configuration for the task runner.
type RunnerConfig struct {
	// WorkerCount determines how many tasks run concurrently. It is the
	// pipeline's concurrency cap against external service rate limits.
	WorkerCount int
}

// DefaultRunnerConfig returns a RunnerConfig with reasonable defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{WorkerCount: 4}
}

// Runner drains the task queue with a pool of worker goroutines. Tasks are
// fire-and-forget: the runner neither aggregates outcomes nor reports them
// back to the submitter. A failed task is logged and its siblings keep
// running. Completion is observable only through the item store.
type Runner struct {
	queue       TaskQueueReader
	workerCount int
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	logger      *slog.Logger
}

// NewRunner creates a new Runner reading from the given queue.
func NewRunner(queue TaskQueueReader, config RunnerConfig, logger *slog.Logger) *Runner {
	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		logger.Warn("invalid worker count specified, using default",
			"specified_count", config.WorkerCount,
			"default_count", 1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		queue:       queue,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger.With(slog.String("component", "task_runner")),
	}
}

// Start launches the worker goroutines.
func (r *Runner) Start() {
	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}

	r.logger.Info("task runner started", "worker_count", r.workerCount)
}

// Stop signals all workers to finish their current task and waits for them
// to exit. The queue should be closed by its owner before or after.
func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
	r.logger.Info("task runner stopped")
}

// worker processes tasks from the queue until shutdown.
func (r *Runner) worker(id int) {
	defer r.wg.Done()

	r.logger.Debug("starting worker", "worker_id", id)

	for {
		select {
		case <-r.ctx.Done():
			r.logger.Debug("stopping worker", "worker_id", id)
			return

		case t, ok := <-r.queue.GetChannel():
			if !ok {
				r.logger.Debug("task channel closed, stopping worker", "worker_id", id)
				return
			}

			r.processTask(t, id)
		}
	}
}

// processTask handles execution of a single task. A task error is terminal
// for that task only; there is no retry and no effect on siblings.
func (r *Runner) processTask(t Task, workerID int) {
	logger := r.logger.With(
		"task_id", t.ID(),
		"task_type", t.Type(),
		"worker_id", workerID,
	)

	logger.Info("processing task")

	if err := t.Execute(context.Background()); err != nil {
		logger.Error("task execution failed", "error", err)
		return
	}

	logger.Info("task completed")
}
