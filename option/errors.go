package option

import "errors"

// Sentinel errors for the option package.
var (
	// ErrNoFrequencies indicates Populate was called with empty
	// FrequencyHints; an option table needs at least one observed tile.
	ErrNoFrequencies = errors.New("option: frequency hints are empty")

	// ErrUnknownOption indicates a lookup used an option index outside
	// [0, Table.Count()).
	ErrUnknownOption = errors.New("option: unknown option index")

	// ErrUnknownTileType indicates a lookup used a tile_type_id that was
	// never observed by FrequencyHints.
	ErrUnknownTileType = errors.New("option: unknown tile_type_id")
)
