package main

import (
	"fmt"

	"github.com/younwookim/spark/internal/application/replay"
	"github.com/younwookim/spark/internal/application/session"
)

// ReplayResult is the session state after a headless replay
type ReplayResult struct {
	Frames    int
	Section   int
	Collected int
	Deaths    int
	Cleared   bool
	X, Y      float64
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("frames=%d section=%d collected=%d deaths=%d cleared=%t pos=(%.2f, %.2f)",
		r.Frames, r.Section+1, r.Collected, r.Deaths, r.Cleared, r.X, r.Y)
}

// RunReplay feeds every recorded frame into sess at the recorded step.
// There is no death fade here; recordings already hold idle frames for
// the ticks the player could not act.
func RunReplay(sess *session.Session, r *replay.Replayer) ReplayResult {
	for {
		intent, ok := r.GetInput()
		if !ok {
			break
		}
		sess.Step(intent, r.DT())
	}

	player := sess.Player()
	return ReplayResult{
		Frames:    r.CurrentFrame(),
		Section:   sess.Section(),
		Collected: sess.Collected(),
		Deaths:    sess.Deaths(),
		Cleared:   sess.Cleared(),
		X:         player.Transform.X,
		Y:         player.Transform.Y,
	}
}
