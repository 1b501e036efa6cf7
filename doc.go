// Package upsweep drives a step by step demonstration of the upsweep phase of
// a work-efficient parallel reduction.
//
// The reduction itself lives in package reducer and produces a lazy trace of
// events. A Demo feeds that trace to a handler.Handler one stage at a time,
// which is how the render package prints the familiar
//
//	[5, 5, 5, 5, 5, 5, 5, 5, 5, 5]
//	------------------
//	[5, 5, 5, 5, 5, 5, 5, 5, 5, 5]
//	[10, 1, 5, 5, 5, 5, 5, 5, 5, 5]
//	...
//
// output, one line per pair with the pair highlighted and a separator after
// every stage.
//
// Basic usage:
//
//	p := render.NewPrinter[int](os.Stdout)
//	demo, err := upsweep.NewDemo[int](p, upsweep.WithLogger[int](logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data := upsweep.Uniform(10, 5)
//	p.Sequence(data)
//	p.Separator()
//	if _, err := demo.Run(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//	p.Sequence(data)
package upsweep
