package system

// Intent is the player's input for one tick, sampled once before the
// resolver runs.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	JumpHeld  bool
}

// Direction returns -1, 0 or 1. Opposite keys cancel out.
func (i Intent) Direction() int {
	dir := 0
	if i.MoveLeft {
		dir--
	}
	if i.MoveRight {
		dir++
	}
	return dir
}

// Idle reports whether no input is held
func (i Intent) Idle() bool {
	return !i.MoveLeft && !i.MoveRight && !i.JumpHeld
}
