package replay

import "time"

// Version is written into every new replay file
const Version = "2.0"

// DefaultTPS is the frame rate assumed by replays that do not record one
const DefaultTPS = 60

// FrameInput records the buttons held during a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	T bool `json:"t,omitempty"` // Throw
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameDuration returns the simulated time covered by one frame
func (d *ReplayData) FrameDuration() time.Duration {
	tps := d.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Duration returns the simulated time covered by all frames
func (d *ReplayData) Duration() time.Duration {
	return time.Duration(len(d.Frames)) * d.FrameDuration()
}
