// Package collapse holds the per-run mutable state the resolver drives:
// Cell (one cell's collapse state), Grid (a grid of
// them plus the option.Table they were built from), and CollapsedGrid
// (the finished output).
//
// Collapsing a cell is one-way within a run: once Cell.Collapsed is true
// it never reverts.
package collapse
