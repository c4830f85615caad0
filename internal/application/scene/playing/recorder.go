package playing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/spark/internal/application/replay"
	"github.com/younwookim/spark/internal/application/system"
)

var errNoFrames = errors.New("no frames to save")

// Recorder collects the intent of every simulated tick for replay.
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder starts recording on level at the fixed step dt
func NewRecorder(level string, dt float64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Level:     level,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
	}
}

// RecordFrame appends the intent of the next tick
func (r *Recorder) RecordFrame(intent system.Intent) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), intent))
}

// Save writes the recording to filename. The file is written next to its
// destination and renamed into place, so a reader never sees half a replay.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errNoFrames
	}

	out, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*")
	if err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(append(out, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save replay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	return nil
}

// Stop ends recording; later frames are dropped
func (r *Recorder) Stop() {
	r.stopped = true
}

func (r *Recorder) IsRecording() bool {
	return !r.stopped
}

func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename names a recording after the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
