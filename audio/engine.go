package audio

import (
	"log"
	"sync"
	"sync/atomic"
)

const (
	// SampleRate is fixed: the engine derives its clock from a sample
	// counter, so all timing assumes output is pulled at this rate.
	SampleRate = 48000

	bufferSize = 512

	// MasterGain is the default headroom factor applied to the mixed
	// output. 0.2 keeps dense polyphony out of clipping range; eviction
	// timing and perceived loudness are tuned around it, so changing the
	// default changes behavior downstream.
	MasterGain = 0.2
)

// Device is anything with runtime-settable properties.
type Device interface {
	Set(key string, val interface{}) error
	Get(key string) (interface{}, error)
}

// Note is one live key press. On and Off are engine clock timestamps in
// seconds; Off stays zero until the key is released. A note counts as
// sounding (attack/decay/sustain) while Off is unset or On > Off, and as
// releasing otherwise.
type Note struct {
	Pitch      int
	Instrument int
	On         float64
	Off        float64
	Active     bool
}

// Sounding reports whether the note is still held, i.e. not yet releasing.
func (n Note) Sounding() bool {
	return n.Off <= 0 || n.On > n.Off
}

// Engine holds the shared session state: the live notes and the playback
// clock, guarded by one mutex. The input side mutates notes through
// NoteEvent; the audio callback drains samples through NextSample. Those two
// methods are the whole synchronization boundary.
type Engine struct {
	*Props
	gain        *atomic.Value
	instruments []*Instrument

	mu      sync.Mutex
	notes   []*Note
	samples uint64
	clock   float64
}

func NewEngine(props *Props, instruments []*Instrument) *Engine {
	return &Engine{
		Props:       props,
		gain:        props.MustRegister("gain", setFloat64(0, 1), MasterGain),
		instruments: instruments,
	}
}

// NoteEvent registers a key transition for pitch. A press creates a note, or
// re-arms the existing one if it had already been released; pressing a pitch
// that is still sounding is a no-op, so a note is never duplicated. A release
// stamps the off time on a sounding note.
func (e *Engine) NoteEvent(pitch, instrument int, pressed bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range e.notes {
		if n.Pitch != pitch {
			continue
		}
		if pressed {
			if !n.Sounding() {
				n.On = e.clock
				n.Instrument = instrument
				n.Active = true
			}
		} else if n.Sounding() {
			n.Off = e.clock
		}
		return
	}
	if pressed {
		e.notes = append(e.notes, &Note{
			Pitch:      pitch,
			Instrument: instrument,
			On:         e.clock,
			Active:     true,
		})
	}
}

// NextSample advances the clock by one frame and returns the next output
// sample: every live note rendered through its instrument, summed, scaled by
// the gain property. Notes whose envelope has fully released, or whose
// instrument reports its lifetime cap, are evicted before returning.
func (e *Engine) NextSample() float64 {
	e.samples++
	clock := float64(e.samples) / SampleRate
	gain := e.gain.Load().(float64)

	e.mu.Lock()
	e.clock = clock

	var sum float64
	for _, n := range e.notes {
		if n.Instrument < 0 || n.Instrument >= len(e.instruments) {
			// Contract violation by the input side. Dropping the
			// note keeps the callback running; see DESIGN.md.
			log.Printf("engine: note %d has no instrument %d", n.Pitch, n.Instrument)
			n.Active = false
			continue
		}
		inst := e.instruments[n.Instrument]
		s, finished := inst.Render(clock, *n)
		sum += s
		if finished || (!n.Sounding() && inst.Env.Amplitude(clock, n.On, n.Off) == 0) {
			n.Active = false
		}
	}

	// Compact in place so the hot path never allocates.
	live := e.notes[:0]
	for _, n := range e.notes {
		if n.Active {
			live = append(live, n)
		}
	}
	for i := len(live); i < len(e.notes); i++ {
		e.notes[i] = nil
	}
	e.notes = live

	e.mu.Unlock()
	return sum * gain
}

// Process implements Source by pulling one sample per frame and writing the
// mono mix to both output channels.
func (e *Engine) Process(out [][]float32) {
	for i := range out[0] {
		s := float32(e.NextSample())
		out[0][i] += s
		out[1][i] += s
	}
}

// Snapshot copies the live notes for display. The copy is taken under the
// engine lock but the result is private to the caller.
func (e *Engine) Snapshot() []Note {
	e.mu.Lock()
	defer e.mu.Unlock()
	notes := make([]Note, len(e.notes))
	for i, n := range e.notes {
		notes[i] = *n
	}
	return notes
}

// Clock returns the current playback time in seconds.
func (e *Engine) Clock() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// Instruments exposes the registry for name lookups by the control surface.
func (e *Engine) Instruments() []*Instrument {
	return e.instruments
}
