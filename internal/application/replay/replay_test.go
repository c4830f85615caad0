package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spark/internal/application/system"
)

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"r":true}`, string(data))
}

func TestFrameInput_Intent(t *testing.T) {
	in := system.Intent{MoveLeft: true, JumpHeld: true}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Intent())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Level:   "test",
		DT:      1.0 / 60,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.MoveLeft)
	assert.False(t, input.MoveRight)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.MoveLeft)
	assert.True(t, input.MoveRight)
	assert.True(t, input.JumpHeld)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Idle())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData("test", 1.0/60, make([]system.Intent, 5)...)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestReplayer_Metadata(t *testing.T) {
	data := CreateTestReplayData("demo", 1.0/64, make([]system.Intent, 10)...)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, "demo", replayer.Level())
	assert.Equal(t, 1.0/64, replayer.DT())
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		raw := `{"version":"2.0","level":"demo","dt":0.015625,"frames":[{"f":0,"r":true},{"f":1,"j":true}]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, "demo", data.Level)
		assert.Len(t, data.Frames, 2)
		assert.True(t, data.Frames[1].J)
	})

	t.Run("missing dt", func(t *testing.T) {
		path := filepath.Join(dir, "nodt.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"level":"demo","frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("corrupt", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"frames":`), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})
}
