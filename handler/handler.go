package handler

import (
	"context"
	"iter"

	"github.com/davidvella/upsweep/reducer"
)

// Handler defines the interface for consuming the stages of a reduction.
type Handler[T reducer.Number] interface {
	// Handle consumes the pairing events of a single stage
	Handle(ctx context.Context, stage int, events iter.Seq[reducer.Event[T]]) error
}

// Func is a function type that implements Handler.
type Func[T reducer.Number] func(ctx context.Context, stage int, events iter.Seq[reducer.Event[T]]) error

// Handle calls the function.
func (f Func[T]) Handle(ctx context.Context, stage int, events iter.Seq[reducer.Event[T]]) error {
	return f(ctx, stage, events)
}
