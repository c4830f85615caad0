package leveldata

import (
	"context"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
)

// LoadSections decodes every section of cfg in parallel and returns the
// grids in section order once all of them are loaded. A missing or corrupt
// source fails the whole level.
func LoadSections(ctx context.Context, fsys fs.FS, cfg *config.LevelConfig, blocks *entity.BlockSet) ([]*entity.Grid, error) {
	grids := make([]*entity.Grid, len(cfg.Sections))

	g, ctx := errgroup.WithContext(ctx)
	for i, section := range cfg.Sections {
		g.Go(func() error {
			policy, err := entity.ParseAccessPolicy(cfg.AccessFor(section))
			if err != nil {
				return fmt.Errorf("section %d: %w", i, err)
			}
			grid, err := loadSection(ctx, fsys, section, blocks, policy)
			if err != nil {
				return fmt.Errorf("section %d: %w", i, err)
			}
			grids[i] = grid
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}

func loadSection(ctx context.Context, fsys fs.FS, s config.SectionConfig, blocks *entity.BlockSet, policy entity.AccessPolicy) (*entity.Grid, error) {
	switch s.Type {
	case config.SectionASCII, "":
		return FromRows(s.Rows, s.TileMapping, blocks, policy)
	case config.SectionImage:
		img, err := LoadRaster(fsys, s.Path)
		if err != nil {
			return nil, err
		}
		return DecodeRaster(ctx, img, blocks, policy)
	case config.SectionTMX:
		return LoadTMX(fsys, s.Path, s.Layer, blocks, policy)
	default:
		return nil, fmt.Errorf("unknown section type %q", s.Type)
	}
}
