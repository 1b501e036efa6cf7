package upsweep

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/davidvella/upsweep/handler"
	"github.com/davidvella/upsweep/monitoring"
	"github.com/davidvella/upsweep/reducer"
)

// ErrNilHandler is returned by NewDemo when no handler is given.
var ErrNilHandler = errors.New("upsweep: handler is required")

// Demo runs a reduction and hands its stages to a handler.
type Demo[T reducer.Number] struct {
	reducer *reducer.Reducer[T]
	handler handler.Handler[T]
	logger  monitoring.Logger
}

// NewDemo creates a demo delivering every stage to h.
func NewDemo[T reducer.Number](h handler.Handler[T], opts ...Option[T]) (*Demo[T], error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if f, ok := h.(handler.Func[T]); ok && f == nil {
		return nil, ErrNilHandler
	}

	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Demo[T]{
		reducer: reducer.New(o.reducer...),
		handler: h,
		logger:  o.logger,
	}, nil
}

// Uniform returns n copies of v, the usual seed of a demonstration. A negative
// n is treated as 0.
func Uniform[T reducer.Number](n int, v T) []T {
	seq := make([]T, max(n, 0))
	for i := range seq {
		seq[i] = v
	}
	return seq
}

// Run reduces seq in place, calling the handler once per stage, and returns
// seq. The run stops at the first handler error or when ctx is done; ctx is
// checked between stages.
func (d *Demo[T]) Run(ctx context.Context, seq []T) ([]T, error) {
	stages := d.reducer.Stages(len(seq))
	d.logger.Log(ctx, monitoring.INFO, "run_started", "reduction started", map[string]any{
		"size":   len(seq),
		"stages": stages,
	})

	next, stop := iter.Pull(d.reducer.Steps(seq))
	defer stop()

	var pairs, combines int
	for k := range stages {
		if err := ctx.Err(); err != nil {
			d.logger.Log(ctx, monitoring.WARN, "run_cancelled", "reduction cancelled", map[string]any{
				"stage": k,
			})
			return seq, err
		}

		// The stage ends at its marker, whether or not the handler drains it.
		done := false
		events := func(yield func(reducer.Event[T]) bool) {
			for !done {
				ev, ok := next()
				if !ok || ev.Kind == reducer.KindStageEnd {
					done = true
					return
				}
				pairs++
				if ev.InRange {
					combines++
				}
				if !yield(ev) {
					return
				}
			}
		}

		if err := d.handler.Handle(ctx, k, events); err != nil {
			d.logger.Log(ctx, monitoring.ERROR, "stage_failed", err.Error(), map[string]any{
				"stage": k,
			})
			return seq, fmt.Errorf("upsweep: stage %d: %w", k, err)
		}
		for range events {
		}

		d.logger.Log(ctx, monitoring.DEBUG, "stage_done", "stage finished", map[string]any{
			"stage": k,
		})
	}

	d.logger.Log(ctx, monitoring.INFO, "run_finished", "reduction finished", map[string]any{
		"stages":   stages,
		"pairs":    pairs,
		"combines": combines,
	})
	return seq, nil
}
