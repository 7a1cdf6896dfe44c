package collapse

import "errors"

// Sentinel errors for grid/tile conversions; these form a distinct
// error kind from the resolve and option packages' sentinels.
var (
	// ErrSizeMismatch indicates two grids involved in a conversion have
	// different Size.
	ErrSizeMismatch = errors.New("collapse: grid size mismatch")

	// ErrUncollapsedCell indicates ToCollapsedGrid was asked to convert a
	// grid containing a cell that never collapsed.
	ErrUncollapsedCell = errors.New("collapse: cell is not collapsed")

	// ErrUnknownTileType indicates a source grid referenced a
	// tile_type_id the option.Table has no entry for.
	ErrUnknownTileType = errors.New("collapse: tile_type_id not present in option table")

	// ErrRehydrate wraps an error returned by a caller-supplied
	// rehydration builder function.
	ErrRehydrate = errors.New("collapse: rehydration builder failed")
)
