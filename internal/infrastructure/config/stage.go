package config

// Section source types
const (
	SectionASCII = "ascii"
	SectionImage = "image"
	SectionTMX   = "tmx"
)

// LevelConfig is the root config for levels/<id>.json.
// A level is an ordered list of sections played one after another.
type LevelConfig struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Blocks      string          `json:"blocks"` // block table path, defaults to blocks.yaml
	TileSize    float64         `json:"tileSize"`
	Origin      PositionConfig  `json:"origin"`
	Access      string          `json:"access"`      // default access policy for every section
	DeathMargin float64         `json:"deathMargin"` // tiles below the grid before a body dies
	Sections    []SectionConfig `json:"sections"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SectionConfig describes where one section's tiles come from.
// ascii sections use Rows and TileMapping; image and tmx sections read Path.
type SectionConfig struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Access      string            `json:"access,omitempty"`
	Rows        []string          `json:"rows,omitempty"`
	TileMapping map[string]string `json:"tileMapping,omitempty"` // character -> block name
	Path        string            `json:"path,omitempty"`
	Layer       string            `json:"layer,omitempty"` // tmx layer, first layer when empty
}

// AccessFor returns the section's access policy name, falling back to the
// level default.
func (c *LevelConfig) AccessFor(s SectionConfig) string {
	if s.Access != "" {
		return s.Access
	}
	return c.Access
}

// BlocksPath returns the block table path
func (c *LevelConfig) BlocksPath() string {
	if c.Blocks == "" {
		return "blocks.yaml"
	}
	return c.Blocks
}
