package reducer

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Reducer can combine.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind identifies what an Event describes.
type Kind int

const (
	// KindPair describes one candidate pair of a stage.
	KindPair Kind = iota
	// KindStageEnd marks the end of a stage.
	KindStageEnd
)

// String returns "pair", "stage_end" or "unknown".
func (k Kind) String() string {
	switch k {
	case KindPair:
		return "pair"
	case KindStageEnd:
		return "stage_end"
	default:
		return "unknown"
	}
}

// MarshalText encodes k as its String form.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pair":
		*k = KindPair
	case "stage_end":
		*k = KindStageEnd
	default:
		return fmt.Errorf("reducer: unknown event kind %q", b)
	}
	return nil
}

// Event is one step of a reduction trace.
type Event[T Number] struct {
	Kind  Kind `json:"kind"`
	Stage int  `json:"stage"`
	// Base and Donor are only set for KindPair. Donor is Base + 2^Stage,
	// saturating at math.MaxInt for stages past the width of an int.
	Base  int `json:"base"`
	Donor int `json:"donor"`
	// InRange reports whether Donor indexes into the slice, i.e. whether the
	// pair is combined.
	InRange bool `json:"in_range"`
	// Snapshot is the slice before the pair is combined (KindPair) or after
	// the stage completed (KindStageEnd).
	Snapshot []T `json:"snapshot"`
}

// Combine folds the donor's value into the base's value.
type Combine[T Number] func(base, donor T) T

// Add is the default Combine.
func Add[T Number](base, donor T) T { return base + donor }

// Mul multiplies the donor into the base.
func Mul[T Number](base, donor T) T { return base * donor }

// Reducer holds the configuration of a reduction. It keeps no state between
// runs and can be reused.
type Reducer[T Number] struct {
	neutral T
	combine Combine[T]
	bound   StageBound
}

// New creates a Reducer. Without options it adds donors into bases, resets
// donors to 1 and runs SqrtBound stages.
func New[T Number](opts ...Option[T]) *Reducer[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Reducer[T]{
		neutral: o.neutral,
		combine: o.combine,
		bound:   o.bound,
	}
}

// Stages returns how many stages a run over n elements performs.
func (r *Reducer[T]) Stages(n int) int {
	return r.bound(n)
}

// Steps returns the trace of reducing seq in place. The reduction advances as
// the sequence is consumed.
func (r *Reducer[T]) Steps(seq []T) iter.Seq[Event[T]] {
	return func(yield func(Event[T]) bool) {
		r.reduce(seq,
			func(k, base, donor int) bool {
				return yield(Event[T]{
					Kind:     KindPair,
					Stage:    k,
					Base:     base,
					Donor:    donor,
					InRange:  donor < len(seq),
					Snapshot: slices.Clone(seq),
				})
			},
			func(k int) bool {
				return yield(Event[T]{Kind: KindStageEnd, Stage: k, Snapshot: slices.Clone(seq)})
			},
		)
	}
}

// reduce runs every stage over seq. pair is called before each candidate
// pair is combined and stageEnd after each stage; either may be nil. The run
// stops as soon as one of them returns false.
func (r *Reducer[T]) reduce(seq []T, pair func(k, base, donor int) bool, stageEnd func(k int) bool) {
	for k := range r.bound(len(seq)) {
		if !r.stage(seq, k, pair) {
			return
		}
		if stageEnd != nil && !stageEnd(k) {
			return
		}
	}
}

func (r *Reducer[T]) stage(seq []T, k int, pair func(k, base, donor int) bool) bool {
	n := len(seq)
	if n == 0 {
		return true
	}
	off := offset(k)
	if off >= n {
		// A single pair starting at 0 whose donor is past the end.
		return pair == nil || pair(k, 0, off)
	}
	for base := 0; base < n; base += 2 * off {
		donor := base + off
		if pair != nil && !pair(k, base, donor) {
			return false
		}
		if donor < n {
			seq[base] = r.combine(seq[base], seq[donor])
			seq[donor] = r.neutral
		}
	}
	return true
}

// Run reduces seq in place and returns it. Unlike Steps it takes no
// snapshots.
func (r *Reducer[T]) Run(seq []T) []T {
	r.reduce(seq, nil, nil)
	return seq
}

// Trace reduces seq in place and returns every event of the run.
func (r *Reducer[T]) Trace(seq []T) []Event[T] {
	return slices.Collect(r.Steps(seq))
}
