// Package analyze builds option.FrequencyHints and option.AdjacencyRules
// from a sample grid.Grid[grid.TypedData]: the input a resolve's
// option.Table is ultimately populated from.
package analyze
