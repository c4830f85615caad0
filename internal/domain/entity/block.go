package entity

import (
	"errors"
	"fmt"
)

// BlockID identifies a block in a BlockSet. It doubles as the tile value
// stored in a Grid.
type BlockID int

// NoBlock marks an empty cell. Accessors also return it alongside
// ErrOutOfBounds for coordinates they cannot resolve.
const NoBlock BlockID = -1

var (
	ErrDuplicateBlock = errors.New("duplicate block")
	ErrUnknownBlock   = errors.New("unknown block id")
)

// Block describes one kind of tile.
// Only Solid is read by the collision core; Layer and ColorCode are used
// by rendering and level decoding.
type Block struct {
	ID        BlockID
	Name      string
	Solid     bool
	Layer     int
	ColorCode uint32 // 0xRRGGBB
}

// BlockSet is the level-wide block table. It is built once at load time
// and only read afterwards, so it can be shared freely.
type BlockSet struct {
	blocks  []Block
	byName  map[string]BlockID
	byColor map[uint32]BlockID
}

// NewBlockSet builds a table from blocks, assigning each block the id of
// its position in the slice.
func NewBlockSet(blocks []Block) (*BlockSet, error) {
	s := &BlockSet{
		blocks:  make([]Block, len(blocks)),
		byName:  make(map[string]BlockID, len(blocks)),
		byColor: make(map[uint32]BlockID, len(blocks)),
	}
	for i, b := range blocks {
		b.ID = BlockID(i)
		if _, ok := s.byName[b.Name]; ok {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateBlock, b.Name)
		}
		if prev, ok := s.byColor[b.ColorCode]; ok {
			return nil, fmt.Errorf("%w: %q and %q share color #%06x",
				ErrDuplicateBlock, s.blocks[prev].Name, b.Name, b.ColorCode)
		}
		s.byName[b.Name] = b.ID
		s.byColor[b.ColorCode] = b.ID
		s.blocks[i] = b
	}
	return s, nil
}

// Len returns the number of blocks in the set
func (s *BlockSet) Len() int {
	return len(s.blocks)
}

// Get returns the block for id
func (s *BlockSet) Get(id BlockID) (Block, bool) {
	if id < 0 || int(id) >= len(s.blocks) {
		return Block{}, false
	}
	return s.blocks[id], true
}

// IsSolid reports whether id is a solid block. NoBlock and unknown ids are
// never solid.
func (s *BlockSet) IsSolid(id BlockID) bool {
	if id < 0 || int(id) >= len(s.blocks) {
		return false
	}
	return s.blocks[id].Solid
}

// Lookup finds a block id by name
func (s *BlockSet) Lookup(name string) (BlockID, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// ByColor returns the block whose color code is rgb, or NoBlock.
func (s *BlockSet) ByColor(rgb uint32) BlockID {
	if id, ok := s.byColor[rgb&0xffffff]; ok {
		return id
	}
	return NoBlock
}

// All returns a copy of the table in id order
func (s *BlockSet) All() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Validate checks that every cell of g holds NoBlock or an id of this set.
func (s *BlockSet) Validate(g *Grid) error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			id := g.At(x, y)
			if id == NoBlock {
				continue
			}
			if id < 0 || int(id) >= len(s.blocks) {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrUnknownBlock, id, x, y)
			}
		}
	}
	return nil
}
