package config

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockSetConfig is the root config for blocks.yaml
type BlockSetConfig struct {
	Blocks  []BlockConfig `yaml:"blocks"`
	Markers MarkersConfig `yaml:"markers"`
}

type BlockConfig struct {
	Name  string `yaml:"name"`
	Solid bool   `yaml:"solid"`
	Layer int    `yaml:"layer"`
	Color string `yaml:"color"` // #RRGGBB, the pixel colour in raster sections
}

// MarkersConfig names the blocks that place the start, the finish and
// collectibles. Empty names are unused.
type MarkersConfig struct {
	Start       string `yaml:"start"`
	Finish      string `yaml:"finish"`
	Collectible string `yaml:"collectible"`
}

// ParseColor parses "#RRGGBB" (or "RRGGBB") into 0xRRGGBB
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
