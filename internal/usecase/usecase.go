// Package usecase wraps asynchronous operations in resource streams.
package usecase

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"reposearch/internal/resource"
)

// Func is the operation a UseCase wraps.
type Func[P, R any] func(ctx context.Context, params P) (R, error)

// UseCase turns a Func into a stream of Loading followed by exactly one of
// Success or Error. Invocations are independent: starting one does not
// cancel another.
type UseCase[P, R any] struct {
	name     string
	executor Executor
	fn       Func[P, R]
}

// New creates a use case running fn on executor.
func New[P, R any](name string, executor Executor, fn Func[P, R]) *UseCase[P, R] {
	if executor == nil {
		executor = GoExecutor{}
	}
	return &UseCase[P, R]{name: name, executor: executor, fn: fn}
}

// Invoke starts the operation. The returned channel yields Loading, then
// the terminal variant, then is closed. It never blocks the executor since
// both values fit in its buffer.
func (u *UseCase[P, R]) Invoke(ctx context.Context, params P) <-chan resource.Resource[R] {
	out := make(chan resource.Resource[R], 2)
	out <- resource.NewLoading[R]()

	u.executor.Execute(ctx, func(ctx context.Context) {
		defer close(out)
		out <- u.run(ctx, params)
	})

	return out
}

func (u *UseCase[P, R]) run(ctx context.Context, params P) (res resource.Resource[R]) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("UseCase %s: panic: %v\n%s", u.name, r, debug.Stack())
			res = resource.NewError[R](fmt.Errorf("%s panicked: %v", u.name, r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return resource.NewError[R](err)
	}

	data, err := u.fn(ctx, params)
	if err != nil {
		return resource.NewError[R](err)
	}
	return resource.NewSuccess(data)
}

// Await drains a stream and returns its terminal value.
func Await[R any](stream <-chan resource.Resource[R]) resource.Resource[R] {
	var last resource.Resource[R]
	for r := range stream {
		last = r
	}
	return last
}
