package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"far away", Rect{X: 50, Y: 50, W: 1, H: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 10, H: 20}
	assert.Equal(t, 13.0, r.Right())
	assert.Equal(t, 24.0, r.Bottom())
}

func createTestLevel() *Level {
	blocks, _ := NewBlockSet([]Block{{Name: "wall", Solid: true, ColorCode: 0xffffff}})
	grid := NewGrid(4, 3, AccessEdge)
	grid.Set(0, 2, 0)
	return &Level{
		Name:     "test",
		Grid:     grid,
		Blocks:   blocks,
		Flags:    NewWallFlags(4, 3, make([]WallFlag, 12)),
		TileSize: 32,
		OriginX:  -64,
		OriginY:  16,
	}
}

func TestLevel_GridMapping(t *testing.T) {
	level := createTestLevel()

	tests := []struct {
		name   string
		wx, wy float64
		gx, gy int
	}{
		{"origin", -64, 16, 0, 0},
		{"inside first tile", -33, 47.9, 0, 0},
		{"second tile", -32, 48, 1, 1},
		{"left of origin floors down", -64.5, 15.5, -1, -1},
		{"far right", 100, 200, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.gx, level.GridX(tt.wx))
			assert.Equal(t, tt.gy, level.GridY(tt.wy))
		})
	}
}

func TestLevel_TilePlanes(t *testing.T) {
	level := createTestLevel()

	assert.Equal(t, -64.0, level.TileLeft(0))
	assert.Equal(t, 32.0, level.TileLeft(3))
	assert.Equal(t, 80.0, level.TileTop(2))
	assert.Equal(t, 128.0, level.Width())
	assert.Equal(t, 96.0, level.Height())
}

func TestLevel_SolidAtClampsToEdge(t *testing.T) {
	level := createTestLevel()

	assert.True(t, level.SolidAt(0, 2))
	assert.True(t, level.SolidAt(-5, 9), "clamps to the bottom-left tile")
	assert.False(t, level.SolidAt(3, 2))
}
