package replay

import "github.com/younwookim/spark/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump held
}

// Intent converts the recorded frame back into a tick intent
func (fi FrameInput) Intent() system.Intent {
	return system.Intent{MoveLeft: fi.L, MoveRight: fi.R, JumpHeld: fi.J}
}

// NewFrameInput records intent for frame f
func NewFrameInput(f int, intent system.Intent) FrameInput {
	return FrameInput{F: f, L: intent.MoveLeft, R: intent.MoveRight, J: intent.JumpHeld}
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic for a fixed level, config and DT.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	DT        float64      `json:"dt"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
