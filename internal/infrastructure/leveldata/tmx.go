package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/spark/internal/domain/entity"
)

// LoadTMX builds a grid from a tile layer of a Tiled map. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
//
// A tile maps to the block whose id equals its local tileset id, unless the
// tileset tile has a "block" property naming a block. An empty layer name
// selects the first tile layer.
func LoadTMX(fsys fs.FS, path, layerName string, blocks *entity.BlockSet, policy entity.AccessPolicy) (*entity.Grid, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if levelMap.Width == 0 || levelMap.Height == 0 {
		return nil, fmt.Errorf("TMX %s: map is empty", path)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if layerName == "" || l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("TMX %s: layer %q not found", path, layerName)
	}

	grid := entity.NewGrid(levelMap.Width, levelMap.Height, policy)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			id := entity.BlockID(tile.ID)
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if name := tilesetTile.Properties.GetString("block"); name != "" {
					named, ok := blocks.Lookup(name)
					if !ok {
						return nil, fmt.Errorf("TMX %s (%d, %d): %w: %q", path, x, y, entity.ErrUnknownBlock, name)
					}
					id = named
				}
			}
			if _, ok := blocks.Get(id); !ok {
				return nil, fmt.Errorf("TMX %s (%d, %d): %w: %d", path, x, y, entity.ErrUnknownBlock, id)
			}
			grid.Set(x, y, id)
		}
	}
	return grid, nil
}
