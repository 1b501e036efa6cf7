package upsweep

import (
	"github.com/davidvella/upsweep/monitoring"
	"github.com/davidvella/upsweep/reducer"
)

// options defines all configuration options for a demo.
type options[T reducer.Number] struct {
	logger  monitoring.Logger
	reducer []reducer.Option[T]
}

// Option is a function that configures a demo.
type Option[T reducer.Number] func(*options[T])

// WithLogger sets the logger run lifecycle events are written to.
func WithLogger[T reducer.Number](l monitoring.Logger) Option[T] {
	return func(o *options[T]) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReducerOptions configures the underlying reducer.
func WithReducerOptions[T reducer.Number](opts ...reducer.Option[T]) Option[T] {
	return func(o *options[T]) {
		o.reducer = append(o.reducer, opts...)
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[T reducer.Number]() options[T] {
	return options[T]{
		logger: monitoring.Nop,
	}
}
