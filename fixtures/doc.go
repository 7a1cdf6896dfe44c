// Package fixtures builds sample grid.Grid[grid.TypedData] values for
// tests, benchmarks, and examples to feed analyze.Analyzer — deterministic
// synthetic generators (checkerboard, stripes, random sparse fill) plus a
// YAML-backed manifest loader for hand-authored samples.
package fixtures
