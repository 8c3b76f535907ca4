package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/younwookim/desertrun/internal/domain/event"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note is one tone of a cue
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

const (
	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

// cues maps every event kind to the notes played for it
var cues = map[event.Kind][]Note{
	event.Jump:            {{Freq: 440, Duration: 60 * time.Millisecond, Wave: WaveSine}, {Freq: 660, Duration: 60 * time.Millisecond, Wave: WaveSine}},
	event.StompKill:       {{Freq: 220, Duration: 50 * time.Millisecond, Wave: WaveSquare}, {Freq: 110, Duration: 90 * time.Millisecond, Wave: WaveSquare}},
	event.EnemyKill:       {{Freq: 180, Duration: 120 * time.Millisecond, Wave: WaveSaw}},
	event.BossHurt:        {{Freq: 90, Duration: 180 * time.Millisecond, Wave: WaveSaw}},
	event.BossDead:        {{Freq: 392, Duration: 120 * time.Millisecond, Wave: WaveSquare}, {Freq: 523.25, Duration: 120 * time.Millisecond, Wave: WaveSquare}, {Freq: 783.99, Duration: 300 * time.Millisecond, Wave: WaveSquare}},
	event.CharacterHurt:   {{Freq: 140, Duration: 150 * time.Millisecond, Wave: WaveSaw}},
	event.CharacterDead:   {{Freq: 330, Duration: 150 * time.Millisecond, Wave: WaveSine}, {Freq: 247, Duration: 150 * time.Millisecond, Wave: WaveSine}, {Freq: 165, Duration: 400 * time.Millisecond, Wave: WaveSine}},
	event.BossActivated:   {{Freq: 60, Duration: 500 * time.Millisecond, Wave: WaveSaw}},
	event.Splash:          {{Duration: 200 * time.Millisecond, Wave: WaveNoise}},
	event.Throw:           {{Duration: 60 * time.Millisecond, Wave: WaveNoise}},
	event.CollectedCoin:   {{Freq: 987.77, Duration: 70 * time.Millisecond, Wave: WaveSquare}, {Freq: 1318.51, Duration: 200 * time.Millisecond, Wave: WaveSquare}},
	event.CollectedBottle: {{Freq: 587.33, Duration: 90 * time.Millisecond, Wave: WaveSine}},
}

// Cue returns the notes for an event kind
func Cue(kind event.Kind) ([]Note, bool) {
	notes, ok := cues[kind]
	return notes, ok
}

// oscillator generates one raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer playing freq for d
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

// NewEnvelope shapes s, which is expected to last d
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		total:    rate.N(d),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Max(float64(left)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer renders notes one after another at volume vol
func Streamer(notes []Note, rate beep.SampleRate, vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.Freq, n.Duration, n.Wave, rate)
		parts = append(parts, NewEnvelope(osc, n.Duration, attack, release, rate))
	}
	return newVolume(beep.Seq(parts...), vol)
}
