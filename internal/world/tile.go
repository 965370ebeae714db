// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileImpenetrable is the rock at the map edge that nothing can dig.
	TileImpenetrable Tile = '%'
	// TileEarth is solid earth that imps can dig out.
	TileEarth Tile = '#'
	// TileGold is a gold seam, diggable like earth.
	TileGold Tile = '$'
	// TileDirt is an unclaimed floor tile.
	TileDirt Tile = '.'
	// TileClaimed is a floor tile owned by a keeper.
	TileClaimed Tile = ','
	// TileRoom is a claimed tile with a room built on it.
	TileRoom Tile = '+'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	switch t {
	case TileDirt, TileClaimed, TileRoom:
		return true
	default:
		return false
	}
}

// IsDiggable returns true if imps can dig the tile out.
func (t Tile) IsDiggable() bool {
	return t == TileEarth || t == TileGold
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
