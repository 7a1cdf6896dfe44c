package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrDimMismatch indicates two values built for different dimension
	// counts were combined (e.g. a Position used against a Size of
	// different Dim).
	ErrDimMismatch = errors.New("grid: dimension mismatch")

	// ErrDimTooLarge indicates a requested dimension count exceeds MaxDim.
	ErrDimTooLarge = errors.New("grid: dimension count exceeds MaxDim")

	// ErrBadSize indicates a Size was constructed with a zero bound on
	// some axis; a grid axis must have at least one cell.
	ErrBadSize = errors.New("grid: size bound must be >= 1 on every axis")

	// ErrBadPosition indicates a position with an out-of-bounds or
	// mismatched-dimension coordinate was passed where a valid position
	// is required.
	ErrBadPosition = errors.New("grid: position invalid for this size")
)
