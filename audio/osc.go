package audio

import (
	"math"
	"math/rand"
)

// Wave selects one of the fixed waveform shapes an oscillator can produce.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSawSlow
	WaveSawFast
	WaveNoise
)

// sawHarmonics is the number of partials summed for the slow sawtooth.
const sawHarmonics = 49

func angular(hertz float64) float64 {
	return hertz * 2 * math.Pi
}

// Oscillate returns a single waveform sample in roughly [-1, 1] for time t
// (seconds) at the given frequency. A non-zero lfoHertz frequency-modulates
// the phase, producing vibrato scaled by lfoAmp. All shapes except WaveNoise
// are pure functions of their arguments.
func Oscillate(t, freq float64, wave Wave, lfoHertz, lfoAmp float64) float64 {
	phase := angular(freq)*t + lfoAmp*freq*math.Sin(angular(lfoHertz)*t)
	switch wave {
	case WaveSine:
		return math.Sin(phase)
	case WaveSquare:
		if math.Sin(phase) > 0 {
			return 1
		}
		return -1
	case WaveTriangle:
		return math.Asin(math.Sin(phase)) * 2 / math.Pi
	case WaveSawSlow:
		var sum float64
		for k := 1.0; k <= sawHarmonics; k++ {
			sum += math.Sin(k*phase) / k
		}
		return sum * 2 / math.Pi
	case WaveSawFast:
		return 2 / math.Pi * (freq*math.Pi*math.Mod(t, 1/freq) - math.Pi/2)
	case WaveNoise:
		return float64(rand.Intn(2) - 1)
	}
	return 0
}
