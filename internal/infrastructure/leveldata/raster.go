package leveldata

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/spark/internal/domain/entity"
)

// LoadRaster decodes a PNG or BMP section image from fsys.
func LoadRaster(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster %s: %w", path, err)
	}
	if format != "png" && format != "bmp" {
		return nil, fmt.Errorf("raster %s: unsupported format %s", path, format)
	}
	return img, nil
}

// DecodeRaster maps every pixel of img to the block with the same colour
// code. One placer per block scans the image and writes only the cells of
// its own colour, so the placers never touch the same cell. Transparent
// pixels and colours without a block stay empty.
func DecodeRaster(ctx context.Context, img image.Image, blocks *entity.BlockSet, policy entity.AccessPolicy) (*entity.Grid, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("raster is empty")
	}
	grid := entity.NewGrid(b.Dx(), b.Dy(), policy)

	g, ctx := errgroup.WithContext(ctx)
	for _, block := range blocks.All() {
		g.Go(func() error {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := b.Min.X; x < b.Max.X; x++ {
					if rgb, ok := pixelRGB(img.At(x, y)); ok && rgb == block.ColorCode {
						grid.Set(x-b.Min.X, y-b.Min.Y, block.ID)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

// pixelRGB returns the 0xRRGGBB code of c, or false for a transparent pixel
func pixelRGB(c color.Color) (uint32, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return 0, false
	}
	return uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B), true
}
