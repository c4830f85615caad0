package system

import "github.com/younwookim/spark/internal/domain/entity"

// CompileWallFlags derives the wall-flag grid of a section in one pass and
// collects marker positions in grid-local world units.
//
// A face bit is set for a solid tile only when the neighbour on that side is
// inside the grid and not solid, so tiles on the grid border never expose a
// face toward the outside.
//
// Start and finish markers are recorded one tile above the marker cell so a
// body placed there stands on it; collectibles sit on their cell.
func CompileWallFlags(grid *entity.Grid, blocks *entity.BlockSet, markers entity.Markers, tileSize float64) (*entity.WallFlags, entity.LevelMeta) {
	cells := make([]entity.WallFlag, grid.Width*grid.Height)
	var meta entity.LevelMeta

	open := func(x, y int) bool {
		return grid.InBounds(x, y) && !blocks.IsSolid(grid.At(x, y))
	}

	for j := 0; j < grid.Height; j++ {
		for i := 0; i < grid.Width; i++ {
			id := grid.At(i, j)

			if blocks.IsSolid(id) {
				var f entity.WallFlag
				if open(i, j-1) {
					f |= entity.WallUp
				}
				if open(i+1, j) {
					f |= entity.WallRight
				}
				if open(i, j+1) {
					f |= entity.WallDown
				}
				if open(i-1, j) {
					f |= entity.WallLeft
				}
				cells[j*grid.Width+i] = f
			}

			if id == entity.NoBlock {
				continue
			}
			x, y := float64(i)*tileSize, float64(j)*tileSize
			switch id {
			case markers.Start:
				meta.Start = entity.Point{X: x, Y: y - tileSize}
				meta.HasStart = true
			case markers.Finish:
				meta.Finish = entity.Point{X: x, Y: y - tileSize}
				meta.HasFinish = true
			case markers.Collectible:
				meta.Collectibles = append(meta.Collectibles, entity.Point{X: x, Y: y})
			}
		}
	}

	return entity.NewWallFlags(grid.Width, grid.Height, cells), meta
}
