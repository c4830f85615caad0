package entity

// WallFlag is a per-tile mask of the faces a body can collide with.
// A bit is set only for a solid tile whose in-bounds neighbour on that side
// is not solid.
type WallFlag uint8

const (
	WallLeft  WallFlag = 16
	WallDown  WallFlag = 32
	WallRight WallFlag = 64
	WallUp    WallFlag = 128

	WallAll = WallUp | WallRight | WallDown | WallLeft
)

// Has reports whether every bit of face is set
func (f WallFlag) Has(face WallFlag) bool {
	return f&face == face
}

// String renders the mask as four characters in U R D L order, '.' for unset.
func (f WallFlag) String() string {
	b := []byte("....")
	if f.Has(WallUp) {
		b[0] = 'U'
	}
	if f.Has(WallRight) {
		b[1] = 'R'
	}
	if f.Has(WallDown) {
		b[2] = 'D'
	}
	if f.Has(WallLeft) {
		b[3] = 'L'
	}
	return string(b)
}

// WallFlags is the face-mask grid parallel to a Grid.
type WallFlags struct {
	Width  int
	Height int

	cells []WallFlag
}

// NewWallFlags wraps a row-major cell slice of length w*h. The slice is
// owned by the returned value.
func NewWallFlags(w, h int, cells []WallFlag) *WallFlags {
	if len(cells) != w*h {
		panic("wallflags: cell count does not match dimensions")
	}
	return &WallFlags{Width: w, Height: h, cells: cells}
}

// At returns the mask at (x, y), or 0 outside the grid.
func (m *WallFlags) At(x, y int) WallFlag {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.cells[y*m.Width+x]
}

// AccessWith reads the mask at (x, y) under policy p.
func (m *WallFlags) AccessWith(p AccessPolicy, x, y int) (WallFlag, error) {
	lx, ly, err := p.Locate(m.Width, m.Height, x, y)
	if err != nil {
		return 0, err
	}
	return m.cells[ly*m.Width+lx], nil
}
