package render

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/davidvella/upsweep/reducer"
	"github.com/fatih/color"
)

// Separator is written after every stage.
const Separator = "------------------"

// Style decorates a highlighted value. *color.Color implements it.
type Style interface {
	Sprint(a ...any) string
}

// DefaultStyles returns a green and a red background style.
func DefaultStyles() []Style {
	return []Style{color.New(color.BgGreen), color.New(color.BgRed)}
}

// Format renders values as "[a, b, c]". Values whose index appears in
// highlights are decorated with styles in turn. Highlights outside values
// are ignored, and so are highlights when no style is given.
func Format[T reducer.Number](values []T, highlights []int, styles ...Style) string {
	var (
		b    strings.Builder
		used int
	)
	b.WriteByte('[')
	for i, v := range values {
		s := fmt.Sprint(v)
		if len(styles) > 0 && slices.Contains(highlights, i) {
			s = styles[used%len(styles)].Sprint(s)
			used++
		}
		b.WriteString(s)
		if i != len(values)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Printer writes sequences and stages to an io.Writer.
type Printer[T reducer.Number] struct {
	w      io.Writer
	styles []Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter[T reducer.Number](w io.Writer, opts ...Option) *Printer[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Printer[T]{w: w, styles: o.resolve()}
}

// Sequence writes values without highlights.
func (p *Printer[T]) Sequence(values []T) error {
	return p.line(Format(values, nil))
}

// Separator writes the separator line.
func (p *Printer[T]) Separator() error {
	return p.line(Separator)
}

// Pair writes the snapshot of a pairing event with its base and donor
// highlighted.
func (p *Printer[T]) Pair(ev reducer.Event[T]) error {
	return p.line(Format(ev.Snapshot, []int{ev.Base, ev.Donor}, p.styles...))
}

// Handle writes every pair of a stage, then the separator.
func (p *Printer[T]) Handle(_ context.Context, _ int, events iter.Seq[reducer.Event[T]]) error {
	for ev := range events {
		if ev.Kind != reducer.KindPair {
			continue
		}
		if err := p.Pair(ev); err != nil {
			return err
		}
	}
	return p.Separator()
}

func (p *Printer[T]) line(s string) error {
	if _, err := io.WriteString(p.w, s+"\n"); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
