package main

import (
	"testing"

	"github.com/mrdg/juno/audio"
)

func TestCompileSong(t *testing.T) {
	tune := []songNote{
		{pitch: 60, start: 0, dur: 1},
		{pitch: 60, start: 1, dur: 1},
	}
	edges := compileSong(tune, 60) // one beat per second

	if got := len(edges); got != 4 {
		t.Fatalf("got %d edges, want 4", got)
	}
	// The release of the first note must precede the re-press at the same
	// sample, or the second note would be swallowed.
	if !edges[0].on || edges[0].at != 0 {
		t.Errorf("edge 0 = %+v, want press at 0", edges[0])
	}
	if edges[1].on || edges[1].at != audio.SampleRate {
		t.Errorf("edge 1 = %+v, want release at %d", edges[1], audio.SampleRate)
	}
	if !edges[2].on || edges[2].at != audio.SampleRate {
		t.Errorf("edge 2 = %+v, want press at %d", edges[2], audio.SampleRate)
	}
}

func TestPlayerTick(t *testing.T) {
	eng := audio.NewEngine(audio.NewProps(), audio.Presets())
	p := &player{eng: eng}
	p.play([]songNote{{pitch: 69, start: 0, dur: 1}}, 120, 0)

	p.Tick(64)
	if got := len(eng.Snapshot()); got != 1 {
		t.Fatalf("got %d notes after first tick, want 1", got)
	}

	// Half a second at 120 bpm ends the note; play it out.
	for i := 0; i < audio.SampleRate; i += 64 {
		p.Tick(64)
		for j := 0; j < 64; j++ {
			eng.NextSample()
		}
	}
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()
	if playing {
		t.Error("player still playing after the tune ended")
	}
	if got := len(eng.Snapshot()); got != 0 {
		t.Errorf("got %d notes after the tune ended, want 0", got)
	}
}

func TestBounceSong(t *testing.T) {
	tune := []songNote{{pitch: 69, start: 0, dur: 1}}
	samples := bounceSong(tune, 120, 0, 1)

	if got := len(samples); got != audio.SampleRate {
		t.Fatalf("got %d samples, want %d", got, audio.SampleRate)
	}
	var nonzero bool
	for _, s := range samples {
		if s != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("bounce produced only silence")
	}

	// The default instrument is a pure sine, so bouncing twice is
	// deterministic.
	again := bounceSong(tune, 120, 0, 1)
	for i := range samples {
		if samples[i] != again[i] {
			t.Fatalf("bounce not deterministic at sample %d", i)
		}
	}
}
