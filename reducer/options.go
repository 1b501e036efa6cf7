package reducer

// options defines the configuration of a Reducer.
type options[T Number] struct {
	neutral T          // Value a donor is reset to after it is combined
	combine Combine[T] // How a donor is folded into its base
	bound   StageBound // How many stages a run performs
}

// Option is a function that configures a Reducer.
type Option[T Number] func(*options[T])

// WithNeutral sets the value donors are reset to.
func WithNeutral[T Number](v T) Option[T] {
	return func(o *options[T]) {
		o.neutral = v
	}
}

// WithCombine sets the combine function. A nil function keeps the default.
func WithCombine[T Number](c Combine[T]) Option[T] {
	return func(o *options[T]) {
		if c != nil {
			o.combine = c
		}
	}
}

// WithStageBound sets the stage bound. A nil bound keeps the default.
func WithStageBound[T Number](b StageBound) Option[T] {
	return func(o *options[T]) {
		if b != nil {
			o.bound = b
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[T Number]() options[T] {
	return options[T]{
		neutral: 1,
		combine: Add[T],
		bound:   SqrtBound,
	}
}
