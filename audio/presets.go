package audio

// Presets returns the built-in instruments in registry order. Instrument ids
// used by Engine.NoteEvent are indices into this slice. The returned
// instruments are shared and must not be mutated.
func Presets() []*Instrument {
	return []*Instrument{
		plain(),
		bell(),
		bell8(),
		harmonica(),
		kick(),
	}
}

// plain is a single unmodulated sine with the default envelope, useful as a
// reference tone and as a test oracle.
func plain() *Instrument {
	return &Instrument{
		Name:   "default",
		Oscs:   []Osc{{Weight: 1}},
		Env:    defaultEnvelope(),
		Volume: 1,
	}
}

func bellOscs() []Osc {
	return []Osc{
		{Weight: 1, Offset: 12, Wave: WaveSine, LFOHertz: 0.001, LFOAmp: 5},
		{Weight: 0.5, Offset: 24, Wave: WaveSine},
		{Weight: 0.25, Offset: 36, Wave: WaveSine},
	}
}

func bell() *Instrument {
	return &Instrument{
		Name: "bell",
		Oscs: bellOscs(),
		Env: Envelope{
			Attack:  0.01,
			Decay:   1.0,
			Release: 1.0,
			Start:   1.0,
			Sustain: 0.0,
		},
		Volume: 1,
	}
}

// bell8 shares the bell's oscillator bank but sustains instead of dying
// away, for a chiptune-ish held tone.
func bell8() *Instrument {
	return &Instrument{
		Name: "bell8",
		Oscs: bellOscs(),
		Env: Envelope{
			Attack:  0.01,
			Decay:   1.0,
			Release: 1.0,
			Start:   1.0,
			Sustain: 0.8,
		},
		Volume: 1,
	}
}

func harmonica() *Instrument {
	return &Instrument{
		Name: "harmonica",
		Oscs: []Osc{
			{Weight: 1, Wave: WaveSquare, LFOHertz: 0.001, LFOAmp: 5},
			{Weight: 0.5, Offset: 12, Wave: WaveSquare},
			{Weight: 0.25, Offset: 24, Wave: WaveNoise},
		},
		Env: Envelope{
			Attack:  0.05,
			Decay:   1.0,
			Release: 0.1,
			Start:   1.0,
			Sustain: 0.95,
		},
		Volume: 1,
	}
}

// kick terminates through MaxLife rather than its envelope: with a zero
// release the amplitude can linger numerically, so the lifetime cap is what
// actually ends the note.
func kick() *Instrument {
	return &Instrument{
		Name: "kick",
		Oscs: []Osc{
			{Weight: 0.99, Offset: -36, Wave: WaveSine},
			{Weight: 0.01, Wave: WaveNoise},
		},
		Env: Envelope{
			Attack:  0.01,
			Decay:   0.15,
			Release: 0.0,
			Start:   1.0,
			Sustain: 0.0,
		},
		Volume:  1,
		MaxLife: 1.5,
	}
}
