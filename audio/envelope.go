package audio

// ampFloor is the silence threshold: any amplitude at or below it snaps to
// zero, which is also how the mixing loop detects a fully released note.
const ampFloor = 1e-4

// Envelope holds the ADSR parameters shared by every note of an instrument.
// Amplitude is derived purely from the note's two timestamps on every call,
// so an Envelope value carries no per-note state.
type Envelope struct {
	Attack  float64 // seconds
	Decay   float64 // seconds
	Release float64 // seconds
	Start   float64 // peak amplitude reached at the end of the attack
	Sustain float64 // amplitude held after the decay
}

func defaultEnvelope() Envelope {
	return Envelope{
		Attack:  0.1,
		Decay:   0.01,
		Release: 0.2,
		Start:   1.0,
		Sustain: 0.8,
	}
}

// Amplitude returns the envelope value in [0, 1] at time now for a note
// triggered at on and released at off. An off of zero means the note has not
// been released (see Note); on == off counts as released with zero sounding
// time, so an instantly released note never reaches the attack phase.
func (e Envelope) Amplitude(now, on, off float64) float64 {
	var amp float64
	if off <= 0 || on > off {
		amp = e.rise(now - on)
	} else {
		// The release decays linearly to zero from wherever the
		// attack/decay curve stood at the moment of release.
		peak := e.rise(off - on)
		if e.Release <= 0 {
			amp = 0
		} else {
			amp = peak - (now-off)/e.Release*peak
		}
	}
	if amp <= ampFloor {
		return 0
	}
	return amp
}

// rise evaluates the attack/decay/sustain curve at elapsed seconds after
// note-on. Zero-length phases complete instantly instead of dividing by zero.
func (e Envelope) rise(elapsed float64) float64 {
	switch {
	case elapsed <= e.Attack:
		if e.Attack <= 0 {
			return e.Start
		}
		return elapsed / e.Attack * e.Start
	case elapsed <= e.Attack+e.Decay:
		if e.Decay <= 0 {
			return e.Sustain
		}
		return e.Start + (elapsed-e.Attack)/e.Decay*(e.Sustain-e.Start)
	default:
		return e.Sustain
	}
}
