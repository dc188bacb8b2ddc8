// Package audio synthesizes retro effect sounds for game events. Everything
// is generated at startup; no sample assets ship with the binary.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skipstone/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// monoStreamer plays a pre-rendered mono buffer once, duplicated to both
// channels.
type monoStreamer struct {
	buf []float64
	pos int
}

func (m *monoStreamer) Stream(samples [][2]float64) (int, bool) {
	if m.pos >= len(m.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if m.pos >= len(m.buf) {
			break
		}
		v := m.buf[m.pos]
		samples[i][0] = v
		samples[i][1] = v
		m.pos++
		n++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }

// Engine owns the speaker and dispatches game events to synthesized tones.
// A failed Init leaves the engine disabled; every method is then a no-op, so
// the game runs fine on machines without audio.
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewEngine creates the engine in its disabled state.
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.enabled = true
	return nil
}

// Close silences the engine. The speaker itself has no close; clearing the
// mixer stops all playback.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.enabled = false
}

// Enabled reports whether audio initialized successfully.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Handle plays the tones for one tick's worth of game events.
func (e *Engine) Handle(events []core.Event, combo int) {
	if !e.Enabled() {
		return
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventLaunch:
			e.play(launchTone())
		case core.EventPerfectLaunch:
			e.play(perfectTone())
		case core.EventSkip, core.EventMultiHit:
			e.play(skipTone(combo))
		case core.EventSmash, core.EventBreak:
			e.play(smashTone())
		case core.EventCoin:
			e.play(coinTone())
		case core.EventWaterSkip, core.EventDive:
			e.play(splashTone())
		case core.EventSink:
			e.play(sinkTone())
		case core.EventGameOver:
			e.play(gameOverTone())
		}
	}
}

func (e *Engine) play(buf []float64) {
	speaker.Lock()
	e.mixer.Add(&monoStreamer{buf: buf})
	speaker.Unlock()
}
