// Package grid defines the dimensionality-generic primitives gridwave is
// built on: Position, Size, Direction, DirectionTable, and the dense
// Grid[T] storage they index into.
//
// What:
//
//   - Position: an N-coordinate point, N in [1, MaxDim], totally ordered.
//   - Size: N bounds plus precomputed strides for O(N) offset math.
//   - Direction: one of the 2N axis-aligned unit steps for a given N.
//   - DirectionTable[T]: a fixed-length (2N) table indexable by Direction.
//   - Grid[T]: flat dense storage of optional T, addressed by Position.
//
// Why:
//
//   - The collapse engine never needs more than these five shapes to
//     reason about adjacency in any dimension; keeping them dependency-
//     free and allocation-light matters because they sit on the hot path
//     of every propagation step.
//
// Dimensionality is a runtime parameter (Dim), not a compile-time one:
// Position and Size carry their coordinates in a fixed-capacity
// [MaxDim]uint32 array, so values of either type stay comparable and
// stack-allocatable for the common N∈{2,3} case, without Go's generics
// needing to parametrize over an integer N.
//
// Errors:
//
//	ErrDimMismatch - two values built for different N were combined.
//	ErrDimTooLarge - a requested N exceeds MaxDim.
//	ErrBadSize     - a Size has a zero bound on some axis.
package grid
