package fixtures

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwave/grid"
)

// Manifest is the YAML shape a hand-authored sample grid is written in:
//
//	bounds: [4, 4]
//	tiles:
//	  - pos: [0, 0]
//	    tile_type_id: 1
//	  - pos: [1, 0]
//	    tile_type_id: 2
//
// Positions not listed are left empty in the resulting grid.
type Manifest struct {
	Bounds []uint32       `yaml:"bounds"`
	Tiles  []ManifestTile `yaml:"tiles"`
}

// ManifestTile is one filled cell in a Manifest.
type ManifestTile struct {
	Pos        []uint32 `yaml:"pos"`
	TileTypeID uint64   `yaml:"tile_type_id"`
}

// LoadManifest decodes YAML from r and builds the sample grid it
// describes. Returns ErrManifestDimMismatch if any tile's pos has a
// different length than bounds.
func LoadManifest(r io.Reader) (*grid.Grid[grid.TypedData], error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("fixtures: LoadManifest: decode: %w", err)
	}

	size, err := grid.NewSize(m.Bounds...)
	if err != nil {
		return nil, fmt.Errorf("fixtures: LoadManifest: %w", err)
	}

	g := grid.NewGrid[grid.TypedData](size)
	for _, mt := range m.Tiles {
		if len(mt.Pos) != size.Dim {
			return nil, fmt.Errorf("fixtures: LoadManifest: tile %v: %w", mt.Pos, ErrManifestDimMismatch)
		}
		pos := grid.NewPosition(mt.Pos...)
		g.InsertData(pos, tile{id: mt.TileTypeID})
	}

	return g, nil
}
