package main

import (
	"testing"

	"github.com/mrdg/juno/audio"
	"github.com/mrdg/juno/dub"
)

func newTestEnv() *env {
	engine := audio.NewEngine(audio.NewProps(), audio.Presets())
	return &env{
		engine:  engine,
		player:  &player{eng: engine},
		devices: map[string]audio.Device{"engine": engine},
		octave:  4,
	}
}

func TestEvalNoteCommands(t *testing.T) {
	env := newTestEnv()

	if _, err := env.eval("on c4 e4"); err != nil {
		t.Fatal(err)
	}
	notes := env.engine.Snapshot()
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Pitch != 60 || notes[1].Pitch != 64 {
		t.Fatalf("wrong pitches: %+v", notes)
	}

	// Let the clock move so releases land after the on times.
	for i := 0; i < 100; i++ {
		env.engine.NextSample()
	}

	if _, err := env.eval("off *"); err != nil {
		t.Fatal(err)
	}
	for _, n := range env.engine.Snapshot() {
		if n.Sounding() {
			t.Errorf("note %d still sounding after off *", n.Pitch)
		}
	}
}

func TestEvalInstCommand(t *testing.T) {
	env := newTestEnv()

	result, err := env.eval("inst bell")
	if err != nil {
		t.Fatal(err)
	}
	if result != dub.Identifier("bell") {
		t.Errorf("result = %v, want bell", result)
	}
	if env.inst != 1 {
		t.Errorf("env.inst = %d, want 1", env.inst)
	}

	if _, err := env.eval("inst theremin"); err == nil {
		t.Error("expected error for unknown instrument")
	}
}

func TestEvalProps(t *testing.T) {
	env := newTestEnv()

	result, err := env.eval("get engine gain")
	if err != nil {
		t.Fatal(err)
	}
	if result != dub.Float(audio.MasterGain) {
		t.Errorf("gain = %v, want %v", result, audio.MasterGain)
	}

	if _, err := env.eval("set engine gain 0.5"); err != nil {
		t.Fatal(err)
	}
	result, err = env.eval("get engine gain")
	if err != nil {
		t.Fatal(err)
	}
	if result != dub.Float(0.5) {
		t.Errorf("gain = %v, want 0.5", result)
	}

	if _, err := env.eval("set amp gain 0.5"); err == nil {
		t.Error("expected error for unknown device")
	}
}

func TestEvalErrors(t *testing.T) {
	env := newTestEnv()
	for _, input := range []string{
		"frobnicate",
		"on",
		"inst bell bell8",
		"on q9",
		"octave 11",
	} {
		if _, err := env.eval(input); err == nil {
			t.Errorf("eval(%q): expected error", input)
		}
	}
}
