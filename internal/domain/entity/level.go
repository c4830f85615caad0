package entity

import "math"

// Markers names the block ids that carry level metadata instead of terrain.
// Unused markers are NoBlock.
type Markers struct {
	Start       BlockID
	Finish      BlockID
	Collectible BlockID
}

// NoMarkers returns a Markers value with every marker unset
func NoMarkers() Markers {
	return Markers{Start: NoBlock, Finish: NoBlock, Collectible: NoBlock}
}

// LevelMeta holds the positions found while compiling a section, in world
// units.
type LevelMeta struct {
	Start        Point
	HasStart     bool
	Finish       Point
	HasFinish    bool
	Collectibles []Point
}

// Level is one compiled section: tile grid, block table and wall flags plus
// the world placement. It is immutable once built and is read concurrently
// by every resolver.
type Level struct {
	Name   string
	Grid   *Grid
	Blocks *BlockSet
	Flags  *WallFlags
	Meta   LevelMeta

	TileSize     float64
	OriginX      float64
	OriginY      float64
	DeathBarrier float64 // bodies whose Y passes this are dead
}

// GridX maps a world x coordinate to a column
func (l *Level) GridX(wx float64) int {
	return int(math.Floor((wx - l.OriginX) / l.TileSize))
}

// GridY maps a world y coordinate to a row
func (l *Level) GridY(wy float64) int {
	return int(math.Floor((wy - l.OriginY) / l.TileSize))
}

// TileLeft returns the world x of column i's left plane
func (l *Level) TileLeft(i int) float64 {
	return l.OriginX + float64(i)*l.TileSize
}

// TileTop returns the world y of row j's top plane
func (l *Level) TileTop(j int) float64 {
	return l.OriginY + float64(j)*l.TileSize
}

// Width returns the level width in world units
func (l *Level) Width() float64 {
	return float64(l.Grid.Width) * l.TileSize
}

// Height returns the level height in world units
func (l *Level) Height() float64 {
	return float64(l.Grid.Height) * l.TileSize
}

// FlagsAt returns the edge-clamped wall flags at (i, j).
func (l *Level) FlagsAt(i, j int) WallFlag {
	f, _ := l.Flags.AccessWith(AccessEdge, i, j)
	return f
}

// SolidAt reports whether the edge-clamped tile at (i, j) is solid.
func (l *Level) SolidAt(i, j int) bool {
	return l.Grid.Solid(l.Blocks, i, j)
}
