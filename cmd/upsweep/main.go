// Command upsweep prints a step by step upsweep reduction of a uniform array.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/davidvella/upsweep"
	"github.com/davidvella/upsweep/handler"
	"github.com/davidvella/upsweep/monitoring"
	"github.com/davidvella/upsweep/reducer"
	"github.com/davidvella/upsweep/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type config struct {
	size    int
	seed    int
	combine reducer.Combine[int]
	bound   reducer.StageBound
	color   render.ColorMode
	level   monitoring.LogLevel
	json    bool
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		size: v.GetInt("size"),
		seed: v.GetInt("seed"),
		json: v.GetBool("json"),
	}
	if cfg.size < 0 {
		return cfg, fmt.Errorf("size must not be negative, got %d", cfg.size)
	}

	switch op := v.GetString("op"); op {
	case "add":
		cfg.combine = reducer.Add[int]
	case "mul":
		cfg.combine = reducer.Mul[int]
	default:
		return cfg, fmt.Errorf("unknown op %q, want add or mul", op)
	}

	switch bound := v.GetString("bound"); bound {
	case "sqrt":
		cfg.bound = reducer.SqrtBound
	case "log2":
		cfg.bound = reducer.Log2Bound
	default:
		return cfg, fmt.Errorf("unknown bound %q, want sqrt or log2", bound)
	}

	var err error
	if cfg.color, err = render.ParseColorMode(v.GetString("color")); err != nil {
		return cfg, err
	}
	if cfg.level, err = monitoring.ParseLevel(v.GetString("log-level")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("UPSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "upsweep",
		Short:        "Print the stages of an in-place upsweep reduction",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.Int("size", 10, "number of elements")
	f.Int("seed", 5, "value every element starts with")
	f.String("op", "add", "how a donor is combined into its base: add or mul")
	f.String("bound", "sqrt", "stage bound: sqrt (floor(sqrt(n))+1) or log2 (ceil(log2(n)))")
	f.String("color", "auto", "highlight pairs with colors: auto, always or never")
	f.String("log-level", "info", "minimum level of the JSON log written to stderr")
	f.Bool("json", false, "print the event trace as JSON lines instead of text")

	return cmd
}

func run(cmd *cobra.Command, cfg config) error {
	data := upsweep.Uniform(cfg.size, cfg.seed)
	logger := monitoring.NewLogger(cmd.ErrOrStderr(), "upsweep", cfg.level)
	opts := []upsweep.Option[int]{
		upsweep.WithLogger[int](logger),
		upsweep.WithReducerOptions(
			reducer.WithCombine(cfg.combine),
			reducer.WithStageBound[int](cfg.bound),
		),
	}

	if cfg.json {
		demo, err := upsweep.NewDemo[int](jsonTrace(cmd.OutOrStdout(), data), opts...)
		if err != nil {
			return err
		}
		_, err = demo.Run(cmd.Context(), data)
		return err
	}

	p := render.NewPrinter[int](cmd.OutOrStdout(), render.WithColor(cfg.color))
	demo, err := upsweep.NewDemo[int](p, opts...)
	if err != nil {
		return err
	}

	if err := p.Sequence(data); err != nil {
		return err
	}
	if err := p.Separator(); err != nil {
		return err
	}
	if _, err := demo.Run(cmd.Context(), data); err != nil {
		return err
	}
	return p.Sequence(data)
}

// jsonTrace writes every event of a stage to w as a JSON line, followed by
// the stage end marker. data must be the slice the demo reduces.
func jsonTrace(w io.Writer, data []int) handler.Func[int] {
	enc := json.NewEncoder(w)
	return func(_ context.Context, stage int, events iter.Seq[reducer.Event[int]]) error {
		for ev := range events {
			if err := enc.Encode(ev); err != nil {
				return fmt.Errorf("failed to encode event: %w", err)
			}
		}
		// The stage is complete once its events are drained.
		end := reducer.Event[int]{Kind: reducer.KindStageEnd, Stage: stage, Snapshot: slices.Clone(data)}
		if err := enc.Encode(end); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
