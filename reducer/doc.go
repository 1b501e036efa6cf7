// Package reducer implements the upsweep phase of a work-efficient parallel
// reduction as a sequential, traceable algorithm over an owned slice.
//
// At stage k the reducer walks the slice with a stride of 2^(k+1). Every
// stride contributes one candidate pair: a base position and a donor position
// 2^k to its right. When the donor lies inside the slice its value is combined
// into the base and the donor is reset to a neutral value. Pairs whose donor
// falls past the end of the slice are still reported so that a presentation
// layer can show them, but they leave the slice untouched.
//
// Key features:
//   - Generic over integer and floating point element types
//   - Lazy event trace using Go's iter.Seq
//   - Pluggable combine function and neutral value
//   - Pluggable stage bound (defaults to floor(sqrt(n)) + 1)
//   - No I/O, no goroutines, no hidden state between runs
//
// Basic usage:
//
//	data := []int{5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
//	r := reducer.New[int]()
//
//	for ev := range r.Steps(data) {
//	    if ev.Kind == reducer.KindPair {
//	        fmt.Println(ev.Stage, ev.Base, ev.Donor, ev.Snapshot)
//	    }
//	}
//
//	fmt.Println(data) // [50 1 1 1 1 1 1 1 1 1]
//
// Event contract:
//
// A KindPair event carries a private copy of the slice taken immediately
// before the pair is combined, together with the two positions involved. A
// KindStageEnd event follows the last pair of every stage and carries a copy
// of the slice once the stage is complete. Snapshots never alias the slice
// being reduced, so a consumer may keep them.
//
// The slice passed to Steps belongs to the iteration until it finishes.
// Breaking out of the loop early leaves the slice in whatever state the last
// applied combine produced; the run cannot be resumed.
package reducer
