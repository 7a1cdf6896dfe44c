// Package gridwave is a dimensionality-generic wave-function-collapse
// engine: give it a sample grid and it learns which tiles may sit next
// to which, then fills a larger grid with a tiling that respects every
// rule it learned.
//
// 🧩 What is gridwave?
//
//	A small, dependency-light constraint-propagation library:
//
//	  • grid/option: N-dimensional grid primitives and the per-tile rule
//	    tables a resolve runs against
//	  • collapse: per-cell collapse state and the grid that holds it
//	  • queue: entropy- and position-ordered visiting policies, plus the
//	    propagator that cascades a collapse through its neighbours
//	  • resolve: the driver that ties a queue, an RNG, and a grid
//	    together into a finished CollapsedGrid
//	  • analyze/fixtures: turn a small sample grid into the
//	    FrequencyHints and AdjacencyRules a resolve needs
//
// ✨ Why gridwave?
//
//   - Deterministic — same seed, same queue, same table: same output
//   - Dimension-agnostic — 2D and 3D (and beyond) share one codebase
//   - No global state — every RNG draw is explicit and injected
//
// Quick shape:
//
//	sample -> analyze.Analyzer -> option.Table -> collapse.Grid
//	       -> resolve.Resolve -> collapse.CollapsedGrid
//
//	go get github.com/katalvlaran/gridwave
package gridwave
