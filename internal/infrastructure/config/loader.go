package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoSections is returned for a level config without sections
var ErrNoSections = errors.New("level has no sections")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration using fs.FS interface.
// JSON carries tuning and levels, YAML carries block tables.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the file system level sources are read from
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := loadJSON(l.fsys, "physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := loadJSON(l.fsys, "entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.json
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := loadJSON(l.fsys, "levels/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	if len(cfg.Sections) == 0 {
		return nil, fmt.Errorf("level %s: %w", name, ErrNoSections)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("level %s: tile size must be positive, got %v", name, cfg.TileSize)
	}
	return &cfg, nil
}

// LoadBlocks loads a YAML block table
func (l *Loader) LoadBlocks(path string) (*BlockSetConfig, error) {
	cfg, err := loadYAML[BlockSetConfig](l.fsys, path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Blocks) == 0 {
		return nil, fmt.Errorf("%s: no blocks defined", path)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

func loadJSON(fsys fs.FS, path string, v any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func loadYAML[T any](fsys fs.FS, path string) (T, error) {
	var zero T
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		return zero, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return v, nil
}
