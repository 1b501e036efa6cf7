package render_test

import (
	"fmt"
	"os"

	"github.com/davidvella/upsweep/reducer"
	"github.com/davidvella/upsweep/render"
)

// ExampleFormat highlights the two positions of a pair.
func ExampleFormat() {
	fmt.Println(render.Format([]int{10, 1, 10, 1}, []int{0, 2}, wrap("<>"), wrap("{}")))

	// Output: [<10>, 1, {10}, 1]
}

// ExamplePrinter_Pair prints every pair of a run without colors.
func ExamplePrinter_Pair() {
	p := render.NewPrinter[int](os.Stdout, render.WithColor(render.ColorNever))
	data := []int{1, 2, 3}

	for ev := range reducer.New[int]().Steps(data) {
		if ev.Kind == reducer.KindPair {
			p.Pair(ev)
		} else {
			p.Separator()
		}
	}
	p.Sequence(data)

	// Output:
	// [1, 2, 3]
	// [3, 1, 3]
	// ------------------
	// [3, 1, 3]
	// ------------------
	// [6, 1, 1]
}
