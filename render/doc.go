// Package render turns a reduction trace into terminal text.
//
// A sequence is rendered as a bracketed, comma separated list. Highlighted
// positions are wrapped in styles that alternate in index order: the first
// highlighted value gets the first style, the second gets the second style,
// and so on, cycling when there are more highlights than styles. The default
// styles are a green and a red background.
//
// Basic usage:
//
//	p := render.NewPrinter[int](os.Stdout, render.WithColor(render.ColorNever))
//	data := []int{5, 5, 5, 5}
//
//	p.Sequence(data) // [5, 5, 5, 5]
//	p.Separator()    // ------------------
//
//	for ev := range reducer.New[int]().Steps(data) {
//	    if ev.Kind == reducer.KindPair {
//	        p.Pair(ev)
//	    }
//	}
//
// Printer implements handler.Handler: it writes one line per pair of a stage
// followed by a separator line.
package render
