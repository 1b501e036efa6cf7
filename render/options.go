package render

import (
	"fmt"

	"github.com/fatih/color"
)

// ColorMode selects when escape sequences are written.
type ColorMode int

const (
	// ColorAuto follows color.NoColor, which is set when stdout is not a
	// terminal or NO_COLOR is present.
	ColorAuto ColorMode = iota
	// ColorAlways writes escape sequences even when the output is not a
	// terminal.
	ColorAlways
	// ColorNever writes plain text.
	ColorNever
)

// options defines the configuration of a Printer.
type options struct {
	styles []Style
	mode   ColorMode
}

// Option is a function that configures a Printer.
type Option func(*options)

// WithStyles replaces the highlight styles.
func WithStyles(styles ...Style) Option {
	return func(o *options) {
		o.styles = styles
	}
}

// WithColor sets the color mode of the default styles. It has no effect on
// styles given through WithStyles.
func WithColor(mode ColorMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

func defaultOptions() options {
	return options{mode: ColorAuto}
}

func (o options) resolve() []Style {
	if o.styles != nil {
		return o.styles
	}
	styles := DefaultStyles()
	for _, s := range styles {
		c, ok := s.(*color.Color)
		if !ok {
			continue
		}
		switch o.mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return styles
}

// ParseColorMode accepts "auto", "always" and "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("render: unknown color mode %q", s)
	}
}
