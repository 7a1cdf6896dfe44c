package fixtures

import "errors"

var (
	// ErrTooFewIDs is returned by generators that need at least one
	// tile_type_id (Stripes, RandomSparse) but were given none.
	ErrTooFewIDs = errors.New("fixtures: at least one tile_type_id is required")

	// ErrBadProbability is returned when a generator's fill/empty
	// probability argument falls outside [0, 1].
	ErrBadProbability = errors.New("fixtures: probability must be in [0, 1]")

	// ErrManifestDimMismatch is returned when a loaded manifest's tiles
	// reference a coordinate count that doesn't match its declared bounds.
	ErrManifestDimMismatch = errors.New("fixtures: manifest tile dimension does not match declared bounds")
)
