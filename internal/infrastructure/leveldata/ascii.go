// Package leveldata decodes level section sources (ASCII rows, raster
// images and Tiled maps) into tile grids.
package leveldata

import (
	"fmt"

	"github.com/younwookim/spark/internal/domain/entity"
)

// FromRows builds a grid from text rows. Each character is looked up in
// mapping (character -> block name); unmapped characters are empty cells.
// Short rows are padded with empty cells up to the longest row.
func FromRows(rows []string, mapping map[string]string, blocks *entity.BlockSet, policy entity.AccessPolicy) (*entity.Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("ascii section has no rows")
	}

	ids := make(map[rune]entity.BlockID, len(mapping))
	for ch, name := range mapping {
		r := []rune(ch)
		if len(r) != 1 {
			return nil, fmt.Errorf("tile mapping key %q must be a single character", ch)
		}
		id, ok := blocks.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("tile mapping %q: %w: %q", ch, entity.ErrUnknownBlock, name)
		}
		ids[r[0]] = id
	}

	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("ascii section rows are empty")
	}

	grid := entity.NewGrid(width, len(rows), policy)
	for y, row := range rows {
		for x, ch := range []rune(row) {
			if id, ok := ids[ch]; ok {
				grid.Set(x, y, id)
			}
		}
	}
	return grid, nil
}
