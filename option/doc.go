// Package option builds and stores the resolved option universe the
// collapse engine operates over: a bijection between opaque external
// tile_type_ids and dense option indices [0, K), per-option directional
// adjacency, per-option weights, and the "ways to be option" template
// every fresh uncollapsed cell starts from.
//
// Populate is the one place AdjacencyRules and FrequencyHints are
// consumed; the resulting Table is immutable for the lifetime of a
// resolve.
//
// Errors:
//
//	ErrNoFrequencies   - Populate called with no observed tile_type_ids.
//	ErrUnknownOption   - a lookup used an option index >= Table.Count().
//	ErrUnknownTileType - a lookup used a tile_type_id absent from the table.
package option
