// Package replay records the four game buttons per frame and plays them back.
// Together with the level seed a replay reproduces a run exactly.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/desertrun/internal/application/system"
)

// ErrNoFrames is returned for replays without a single frame
var ErrNoFrames = errors.New("replay: no frames")

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoFrames)
	}
	return &data, nil
}

// Save writes replay data to a file
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Jump:  fi.J,
		Throw: fi.T,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// FrameDuration returns the simulated time of one frame
func (r *Replayer) FrameDuration() time.Duration {
	return r.data.FrameDuration()
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Recorder collects frames while a level is played
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a run of level with seed
func NewRecorder(seed int64, level string, tps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Level:     level,
			TPS:       tps,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		T: in.Throw,
	})
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
