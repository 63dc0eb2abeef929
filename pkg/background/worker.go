package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"delivery-marketplace/pkg/logger"
)

// Task is a unit of periodic background work.
type Task interface {
	// TTL returns the interval between runs.
	TTL() time.Duration

	// Do executes one iteration of the task.
	Do(context.Context) error

	// Info returns a human-readable task name for logs.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker runs a set of background tasks on independent tickers.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New runs every task once synchronously (warm-up) and returns an error if any
// of them fails or panics, so broken tasks surface at startup instead of in the
// background. Tasks are then rescheduled on their own tickers until ctx is
// cancelled.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for i := 0; i < len(tasks); i++ {
		task := tasks[i]
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("warmup panic: %v\n%s", r, stack)
					log.Error("task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(warmupCtx)
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("task warmup: %w", err)
	}

	for i := 0; i < len(tasks); i++ {
		task := tasks[i]
		go worker.runTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, task will not be scheduled",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}

	w.log.Info("task scheduled",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runSafely(ctx, task)
		}
	}
}

func (w *Worker) runSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
