package audio

import (
	"math"
	"testing"
)

func TestPitchFreq(t *testing.T) {
	tests := []struct {
		pitch int
		want  float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{60, 261.6255653005986},
	}
	for _, tt := range tests {
		if got := pitchFreq(tt.pitch); !closeTo(got, tt.want, 1e-9) {
			t.Errorf("pitchFreq(%d) = %v, want %v", tt.pitch, got, tt.want)
		}
	}

	// Transposing by semitone offset and scaling by an equal-tempered
	// ratio must agree.
	for offset := -36; offset <= 36; offset += 12 {
		want := pitchFreq(69) * math.Pow(2, float64(offset)/12)
		if got := pitchFreq(69 + offset); !closeTo(got, want, 1e-9) {
			t.Errorf("pitchFreq(69%+d) = %v, want %v", offset, got, want)
		}
	}
}

func TestInstrumentRender(t *testing.T) {
	inst := Presets()[0] // single sine, default envelope
	n := Note{Pitch: 69, On: 1.0, Active: true}
	const now = 1.5 // well past attack and decay, sustain = 0.8

	want := 0.8 * math.Sin(2*math.Pi*440*(n.On-now))
	got, finished := inst.Render(now, n)
	if finished {
		t.Fatal("default instrument has no lifetime cap, must not finish")
	}
	if !closeTo(got, want, 1e-9) {
		t.Errorf("render = %v, want %v", got, want)
	}
}

func TestInstrumentWeightedSum(t *testing.T) {
	inst := &Instrument{
		Name: "test",
		Oscs: []Osc{
			{Weight: 1, Offset: 0, Wave: WaveSine},
			{Weight: 0.5, Offset: 12, Wave: WaveSine},
		},
		Env:    Envelope{Attack: 0, Decay: 0, Release: 1, Start: 1, Sustain: 1},
		Volume: 0.5,
	}
	n := Note{Pitch: 57, On: 2.0, Active: true}
	const now = 2.25

	dt := n.On - now
	want := 0.5 * (math.Sin(2*math.Pi*pitchFreq(57)*dt) + 0.5*math.Sin(2*math.Pi*pitchFreq(69)*dt))
	if got, _ := inst.Render(now, n); !closeTo(got, want, 1e-9) {
		t.Errorf("render = %v, want %v", got, want)
	}
}

func TestInstrumentHardCutoff(t *testing.T) {
	kick := Presets()[4]
	if kick.MaxLife != 1.5 {
		t.Fatalf("kick lifetime = %v, want 1.5", kick.MaxLife)
	}
	n := Note{Pitch: 36, On: 1.0, Active: true}

	if _, finished := kick.Render(1.0+kick.MaxLife-0.01, n); finished {
		t.Error("finished before lifetime cap")
	}
	if _, finished := kick.Render(1.0+kick.MaxLife, n); !finished {
		t.Error("not finished at lifetime cap")
	}
}

func TestPresetRegistry(t *testing.T) {
	want := []string{"default", "bell", "bell8", "harmonica", "kick"}
	presets := Presets()
	if len(presets) != len(want) {
		t.Fatalf("got %d presets, want %d", len(presets), len(want))
	}
	for i, name := range want {
		if presets[i].Name != name {
			t.Errorf("preset %d = %q, want %q", i, presets[i].Name, name)
		}
		if len(presets[i].Oscs) == 0 {
			t.Errorf("preset %q has no oscillators", name)
		}
	}
	// Bell dies away, bell8 holds: same bank, different sustain.
	if got := presets[1].Env.Sustain; got != 0 {
		t.Errorf("bell sustain = %v, want 0", got)
	}
	if got := presets[2].Env.Sustain; got != 0.8 {
		t.Errorf("bell8 sustain = %v, want 0.8", got)
	}
}
