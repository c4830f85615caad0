package entity

import "fmt"

// Grid is the tile-id array of one level section, stored row-major.
// It is filled once at load time and read-only during simulation.
type Grid struct {
	Width  int
	Height int
	Policy AccessPolicy // declared bounds policy, used by Access

	tiles []BlockID
}

// NewGrid creates a w x h grid filled with NoBlock
func NewGrid(w, h int, policy AccessPolicy) *Grid {
	tiles := make([]BlockID, w*h)
	for i := range tiles {
		tiles[i] = NoBlock
	}
	return &Grid{Width: w, Height: h, Policy: policy, tiles: tiles}
}

// NewGridFromRows creates a grid from rows[y][x]. All rows must have the
// same length.
func NewGridFromRows(rows [][]BlockID, policy AccessPolicy) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid must not be empty")
	}
	g := NewGrid(len(rows[0]), len(rows), policy)
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", y, len(row), g.Width)
		}
		copy(g.tiles[y*g.Width:], row)
	}
	return g, nil
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Set stores id at (x, y). Only level loading writes to a grid.
func (g *Grid) Set(x, y int, id BlockID) {
	if g.InBounds(x, y) {
		g.tiles[y*g.Width+x] = id
	}
}

// At returns the tile at (x, y), or NoBlock outside the grid.
func (g *Grid) At(x, y int) BlockID {
	if !g.InBounds(x, y) {
		return NoBlock
	}
	return g.tiles[y*g.Width+x]
}

// Access reads (x, y) under the grid's declared policy.
func (g *Grid) Access(x, y int) (BlockID, error) {
	return g.AccessWith(g.Policy, x, y)
}

// AccessWith reads (x, y) under policy p.
func (g *Grid) AccessWith(p AccessPolicy, x, y int) (BlockID, error) {
	lx, ly, err := p.Locate(g.Width, g.Height, x, y)
	if err != nil {
		return NoBlock, err
	}
	return g.tiles[ly*g.Width+lx], nil
}

// Solid reports whether the edge-clamped tile at (x, y) is solid in blocks.
func (g *Grid) Solid(blocks *BlockSet, x, y int) bool {
	id, _ := g.AccessWith(AccessEdge, x, y)
	return blocks.IsSolid(id)
}
