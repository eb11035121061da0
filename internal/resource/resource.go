// Package resource defines the lifecycle wrapper emitted by use cases.
package resource

import "fmt"

// Resource is the phase of an asynchronous operation producing a T.
// Exactly one of Loading, Success or Error is active. Build values with
// NewLoading, NewSuccess and NewError; pointers to the variants are
// accepted by Fold and IsTerminal but never produced here.
type Resource[T any] interface {
	fmt.Stringer
	isResource()
}

// Loading marks an operation that has started but not finished.
type Loading[T any] struct{}

// Success carries the operation's payload.
type Success[T any] struct {
	Data T
}

// Error carries the operation's failure cause.
type Error[T any] struct {
	Err error
}

func (Loading[T]) isResource() {}
func (Success[T]) isResource() {}
func (Error[T]) isResource()   {}

func (Loading[T]) String() string   { return "LOADING" }
func (s Success[T]) String() string { return fmt.Sprintf("SUCCESS %v", s.Data) }
func (e Error[T]) String() string   { return fmt.Sprintf("ERROR %v", e.Err) }

// NewLoading returns the Loading variant.
func NewLoading[T any]() Resource[T] { return Loading[T]{} }

// NewSuccess returns the Success variant holding data.
func NewSuccess[T any](data T) Resource[T] { return Success[T]{Data: data} }

// NewError returns the Error variant holding err.
func NewError[T any](err error) Resource[T] { return Error[T]{Err: err} }

// Fold maps r to a value with one handler per variant.
func Fold[T, R any](r Resource[T], onLoading func() R, onSuccess func(T) R, onError func(error) R) R {
	switch v := r.(type) {
	case Loading[T], *Loading[T]:
		return onLoading()
	case Success[T]:
		return onSuccess(v.Data)
	case *Success[T]:
		return onSuccess(v.Data)
	case Error[T]:
		return onError(v.Err)
	case *Error[T]:
		return onError(v.Err)
	case nil:
		panic("resource: nil Resource")
	default:
		panic(fmt.Sprintf("resource: unknown variant %T", r))
	}
}

// IsTerminal reports whether r is Success or Error. A nil r is not.
func IsTerminal[T any](r Resource[T]) bool {
	switch r.(type) {
	case Success[T], *Success[T], Error[T], *Error[T]:
		return true
	default:
		return false
	}
}
