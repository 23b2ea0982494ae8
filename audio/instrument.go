package audio

import "math"

// Osc describes one oscillator in an instrument's bank: a waveform played at
// a fixed semitone offset from the note's pitch, mixed in at Weight, with an
// optional vibrato LFO.
type Osc struct {
	Weight   float64
	Offset   int // semitones added to the note's pitch
	Wave     Wave
	LFOHertz float64
	LFOAmp   float64
}

// Instrument is an immutable timbre: an oscillator bank, one envelope shared
// by all of its notes, an output gain, and an optional hard lifetime cap.
type Instrument struct {
	Name string
	Oscs []Osc
	Env  Envelope

	Volume float64

	// MaxLife forces a note to finish this many seconds after note-on no
	// matter what the envelope says. Zero means no cap. Percussive presets
	// use it to guarantee termination.
	MaxLife float64
}

// Render produces the instrument's sample for note n at time now. The
// returned flag reports only the hard lifetime cutoff; deciding that a
// released note's envelope has fully decayed is the mixing loop's job.
func (in *Instrument) Render(now float64, n Note) (float64, bool) {
	amp := in.Env.Amplitude(now, n.On, n.Off)
	finished := in.MaxLife > 0 && now-n.On >= in.MaxLife

	t := n.On - now
	var sum float64
	for _, o := range in.Oscs {
		sum += o.Weight * Oscillate(t, pitchFreq(n.Pitch+o.Offset), o.Wave, o.LFOHertz, o.LFOAmp)
	}
	return amp * sum * in.Volume, finished
}

// pitchFreq converts a MIDI-style pitch number to a frequency in Hz using
// equal temperament anchored at A4 = 440 Hz (pitch 69).
func pitchFreq(pitch int) float64 {
	return 440 * math.Pow(2, float64(pitch-69)/12)
}

// PitchFreq reports the frequency a pitch number sounds at. It exists for
// display code; the engine uses the internal form directly.
func PitchFreq(pitch int) float64 { return pitchFreq(pitch) }
