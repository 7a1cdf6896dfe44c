package grid

// TileData is the marker interface for any payload storable per cell.
// It carries no methods of its own; it exists so generic signatures in
// option and analyze can say "any tile payload" without committing to a
// concrete type.
type TileData interface{}

// TypedData refines TileData with the one piece every analyzer and the
// option table need: an externally meaningful tile category.
type TypedData interface {
	TileData
	TileTypeID() uint64
}

// CollapsedTileData is the TypedData produced by a finished resolve: it
// carries only the chosen tile_type_id, nothing else.
type CollapsedTileData struct {
	ID uint64
}

// TileTypeID implements TypedData.
func (c CollapsedTileData) TileTypeID() uint64 { return c.ID }
