package audio

import (
	"math"
	"math/rand"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// oscillator generates mono samples at unity gain. For waveNoise the freq
// argument is ignored.
func oscillator(waveType int, freq, seconds float64) []float64 {
	samples := int(seconds * float64(sampleRate))
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1 //#nosec G404 -- audio noise, not crypto
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// sweep generates a sine whose frequency slides linearly from f0 to f1.
func sweep(f0, f1, seconds float64) []float64 {
	samples := int(seconds * float64(sampleRate))
	buf := make([]float64, samples)
	phase := 0.0

	for i := range buf {
		t := float64(i) / float64(samples)
		freq := f0 + (f1-f0)*t
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += freq / float64(sampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) []float64 {
	total := len(buf)
	attack := int(attackSec * float64(sampleRate))
	release := int(releaseSec * float64(sampleRate))

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	for i := range buf {
		vol := 1.0
		if i < attack && attack > 0 {
			vol = float64(i) / float64(attack)
		} else if i >= releaseStart && release > 0 {
			vol = float64(total-i) / float64(release)
		}
		buf[i] *= vol
	}
	return buf
}

// scale multiplies the buffer by a gain in place.
func scale(buf []float64, gain float64) []float64 {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

// concat appends b to a.
func concat(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// --- Effect builders (unity gain, enveloped) ---

func launchTone() []float64 {
	return applyEnvelope(scale(sweep(220, 660, 0.12), 0.5), 0.01, 0.05)
}

func perfectTone() []float64 {
	a := applyEnvelope(scale(oscillator(waveSine, 660, 0.07), 0.5), 0.005, 0.02)
	b := applyEnvelope(scale(oscillator(waveSine, 990, 0.1), 0.5), 0.005, 0.05)
	return concat(a, b)
}

// skipTone rises with the combo so streaks are audible.
func skipTone(combo int) []float64 {
	freq := 440 * math.Pow(1.06, float64(combo))
	if freq > 1760 {
		freq = 1760
	}
	return applyEnvelope(scale(oscillator(waveSine, freq, 0.06), 0.45), 0.002, 0.03)
}

func smashTone() []float64 {
	return applyEnvelope(scale(oscillator(waveNoise, 0, 0.15), 0.6), 0.002, 0.1)
}

func coinTone() []float64 {
	return applyEnvelope(scale(oscillator(waveSquare, 1320, 0.08), 0.25), 0.002, 0.04)
}

func splashTone() []float64 {
	return applyEnvelope(scale(oscillator(waveNoise, 0, 0.05), 0.25), 0.002, 0.03)
}

func sinkTone() []float64 {
	return applyEnvelope(scale(sweep(330, 80, 0.35), 0.5), 0.01, 0.2)
}

func gameOverTone() []float64 {
	a := applyEnvelope(scale(oscillator(waveSine, 392, 0.15), 0.5), 0.005, 0.05)
	b := applyEnvelope(scale(oscillator(waveSine, 311, 0.15), 0.5), 0.005, 0.05)
	c := applyEnvelope(scale(oscillator(waveSine, 233, 0.3), 0.5), 0.005, 0.15)
	return concat(concat(a, b), c)
}
