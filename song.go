package main

import (
	"sort"
	"sync"

	"github.com/mrdg/juno/audio"
)

type songNote struct {
	pitch int
	start float64 // beats from the top of the tune
	dur   float64 // beats
}

// demoSong is a little two-bar arpeggio figure in A minor.
var demoSong = []songNote{
	{57, 0, 0.5}, {60, 0.5, 0.5}, {64, 1, 0.5}, {69, 1.5, 0.5},
	{67, 2, 0.5}, {64, 2.5, 0.5}, {60, 3, 0.5}, {64, 3.5, 0.5},
	{55, 4, 0.5}, {59, 4.5, 0.5}, {62, 5, 0.5}, {67, 5.5, 0.5},
	{65, 6, 0.5}, {62, 6.5, 0.5}, {59, 7, 0.5}, {57, 7.5, 1},
}

// noteEdge is a key transition scheduled at an absolute sample time.
type noteEdge struct {
	at    uint64
	pitch int
	on    bool
}

// compileSong flattens a tune into sample-timestamped press/release edges,
// sorted by time with releases ahead of presses at the same sample so a
// repeated pitch re-arms instead of being swallowed.
func compileSong(tune []songNote, bpm float64) []noteEdge {
	spb := 60 / bpm // seconds per beat
	edges := make([]noteEdge, 0, 2*len(tune))
	for _, n := range tune {
		edges = append(edges,
			noteEdge{at: uint64(n.start * spb * audio.SampleRate), pitch: n.pitch, on: true},
			noteEdge{at: uint64((n.start + n.dur) * spb * audio.SampleRate), pitch: n.pitch, on: false},
		)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at != edges[j].at {
			return edges[i].at < edges[j].at
		}
		return !edges[i].on && edges[j].on
	})
	return edges
}

// player feeds a compiled tune into the engine from inside the audio
// callback, one buffer at a time, so note timing is sample accurate. The REPL
// thread arms it with play; Tick runs on the audio thread.
type player struct {
	eng *audio.Engine

	mu      sync.Mutex
	edges   []noteEdge
	next    int
	pos     uint64
	inst    int
	playing bool
}

func (p *player) play(tune []songNote, bpm float64, inst int) {
	edges := compileSong(tune, bpm)
	p.mu.Lock()
	p.edges = edges
	p.next = 0
	p.pos = 0
	p.inst = inst
	p.playing = true
	p.mu.Unlock()
}

func (p *player) Tick(numSamples int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	end := p.pos + uint64(numSamples)
	for p.next < len(p.edges) && p.edges[p.next].at < end {
		edge := p.edges[p.next]
		p.eng.NoteEvent(edge.pitch, p.inst, edge.on)
		p.next++
	}
	p.pos = end
	if p.next == len(p.edges) {
		p.playing = false
	}
}

// bounceSong renders a tune through a fresh engine, offline and
// deterministically, returning seconds worth of mono samples.
func bounceSong(tune []songNote, bpm float64, inst int, seconds float64) []float64 {
	eng := audio.NewEngine(audio.NewProps(), audio.Presets())
	edges := compileSong(tune, bpm)
	out := make([]float64, int(seconds*audio.SampleRate))
	next := 0
	for i := range out {
		for next < len(edges) && edges[next].at <= uint64(i) {
			edge := edges[next]
			eng.NoteEvent(edge.pitch, inst, edge.on)
			next++
		}
		out[i] = eng.NextSample()
	}
	return out
}
