package system

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/spark/internal/domain/entity"
	"github.com/younwookim/spark/internal/infrastructure/config"
	"github.com/younwookim/spark/internal/infrastructure/leveldata"
)

// LevelSpec is everything needed to compile one section
type LevelSpec struct {
	Name        string
	Grid        *entity.Grid
	Blocks      *entity.BlockSet
	Markers     entity.Markers
	TileSize    float64
	OriginX     float64
	OriginY     float64
	DeathMargin float64 // tiles below the grid
}

// BuildLevel validates a section and compiles its wall flags and metadata.
func BuildLevel(spec LevelSpec) (*entity.Level, error) {
	if spec.Grid == nil || spec.Blocks == nil {
		return nil, fmt.Errorf("section %s: missing grid or block table", spec.Name)
	}
	if spec.TileSize <= 0 {
		return nil, fmt.Errorf("section %s: tile size must be positive, got %v", spec.Name, spec.TileSize)
	}
	if err := spec.Blocks.Validate(spec.Grid); err != nil {
		return nil, fmt.Errorf("section %s: %w", spec.Name, err)
	}

	flags, meta := CompileWallFlags(spec.Grid, spec.Blocks, spec.Markers, spec.TileSize)

	shift := func(p entity.Point) entity.Point {
		return entity.Point{X: p.X + spec.OriginX, Y: p.Y + spec.OriginY}
	}
	meta.Start = shift(meta.Start)
	meta.Finish = shift(meta.Finish)
	for i, p := range meta.Collectibles {
		meta.Collectibles[i] = shift(p)
	}

	return &entity.Level{
		Name:         spec.Name,
		Grid:         spec.Grid,
		Blocks:       spec.Blocks,
		Flags:        flags,
		Meta:         meta,
		TileSize:     spec.TileSize,
		OriginX:      spec.OriginX,
		OriginY:      spec.OriginY,
		DeathBarrier: spec.OriginY + (float64(spec.Grid.Height)+spec.DeathMargin)*spec.TileSize,
	}, nil
}

// BuildLevels compiles independent sections in parallel. It returns once
// every section is built, or with the first error.
func BuildLevels(ctx context.Context, specs []LevelSpec) ([]*entity.Level, error) {
	levels := make([]*entity.Level, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			level, err := BuildLevel(spec)
			if err != nil {
				return err
			}
			levels[i] = level
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return levels, nil
}

// NewBlockSet converts a block table config into the shared block set and
// its marker ids.
func NewBlockSet(cfg *config.BlockSetConfig) (*entity.BlockSet, entity.Markers, error) {
	blocks := make([]entity.Block, len(cfg.Blocks))
	for i, b := range cfg.Blocks {
		color, err := config.ParseColor(b.Color)
		if err != nil {
			return nil, entity.Markers{}, fmt.Errorf("block %q: %w", b.Name, err)
		}
		blocks[i] = entity.Block{Name: b.Name, Solid: b.Solid, Layer: b.Layer, ColorCode: color}
	}

	set, err := entity.NewBlockSet(blocks)
	if err != nil {
		return nil, entity.Markers{}, err
	}

	markers := entity.NoMarkers()
	lookup := func(name string, dst *entity.BlockID) error {
		if name == "" {
			return nil
		}
		id, ok := set.Lookup(name)
		if !ok {
			return fmt.Errorf("marker block %q is not defined", name)
		}
		*dst = id
		return nil
	}
	if err := lookup(cfg.Markers.Start, &markers.Start); err != nil {
		return nil, markers, err
	}
	if err := lookup(cfg.Markers.Finish, &markers.Finish); err != nil {
		return nil, markers, err
	}
	if err := lookup(cfg.Markers.Collectible, &markers.Collectible); err != nil {
		return nil, markers, err
	}
	return set, markers, nil
}

// LoadLevel reads levels/<name>.json with its block table, decodes every
// section and compiles them. Sections are decoded and compiled in parallel.
func LoadLevel(ctx context.Context, loader *config.Loader, name string) ([]*entity.Level, error) {
	cfg, err := loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}

	blockCfg, err := loader.LoadBlocks(cfg.BlocksPath())
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	blocks, markers, err := NewBlockSet(blockCfg)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	grids, err := leveldata.LoadSections(ctx, loader.FS(), cfg, blocks)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	specs := make([]LevelSpec, len(grids))
	for i, grid := range grids {
		specs[i] = LevelSpec{
			Name:        sectionName(cfg, i),
			Grid:        grid,
			Blocks:      blocks,
			Markers:     markers,
			TileSize:    cfg.TileSize,
			OriginX:     cfg.Origin.X,
			OriginY:     cfg.Origin.Y,
			DeathMargin: cfg.DeathMargin,
		}
	}

	levels, err := BuildLevels(ctx, specs)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	for _, l := range levels {
		if !l.Meta.HasStart {
			log.Printf("level %s: section %s has no start marker, spawning at origin", name, l.Name)
		}
	}
	return levels, nil
}

func sectionName(cfg *config.LevelConfig, i int) string {
	if n := cfg.Sections[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("%s-%d", cfg.ID, i+1)
}
