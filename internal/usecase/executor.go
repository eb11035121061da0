package usecase

import "context"

// Executor runs use-case work off the caller's goroutine.
type Executor interface {
	Execute(ctx context.Context, task func(ctx context.Context))
}

// GoExecutor runs every task on its own goroutine.
type GoExecutor struct{}

// Execute implements Executor.
func (GoExecutor) Execute(ctx context.Context, task func(ctx context.Context)) {
	go task(ctx)
}

// PoolExecutor runs at most a fixed number of tasks at once.
type PoolExecutor struct {
	workerPool chan struct{} // Semaphore for limiting concurrent tasks
}

// NewPoolExecutor creates an executor with the given number of workers.
// Values below one are treated as one.
func NewPoolExecutor(workers int) *PoolExecutor {
	if workers < 1 {
		workers = 1
	}
	return &PoolExecutor{workerPool: make(chan struct{}, workers)}
}

// Execute implements Executor. A task whose context ends while waiting for
// a slot still runs, so it can report the cancellation to its caller.
func (p *PoolExecutor) Execute(ctx context.Context, task func(ctx context.Context)) {
	go func() {
		select {
		case p.workerPool <- struct{}{}:
			defer func() { <-p.workerPool }()
		case <-ctx.Done():
		}
		task(ctx)
	}()
}

// NewExecutor returns a PoolExecutor for workers > 0 and a GoExecutor
// otherwise.
func NewExecutor(workers int) Executor {
	if workers > 0 {
		return NewPoolExecutor(workers)
	}
	return GoExecutor{}
}
