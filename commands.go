package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mrdg/juno/audio"
	"github.com/mrdg/juno/dub"
)

func resolvePitch(arg dub.Node) (int, error) {
	switch v := arg.(type) {
	case dub.Int:
		if v < 0 || v > 127 {
			return 0, fmt.Errorf("pitch out of range: %d", int(v))
		}
		return int(v), nil
	case dub.Identifier:
		return parsePitch(string(v))
	default:
		return 0, fmt.Errorf("expected a pitch, got %v", arg)
	}
}

func resolvePitches(args []dub.Node) ([]int, error) {
	pitches := make([]int, len(args))
	for i, arg := range args {
		p, err := resolvePitch(arg)
		if err != nil {
			return nil, err
		}
		pitches[i] = p
	}
	return pitches, nil
}

func onCommand(env *env, args []dub.Node) (dub.Node, error) {
	pitches, err := resolvePitches(args)
	if err != nil {
		return nil, err
	}
	for _, p := range pitches {
		env.engine.NoteEvent(p, env.inst, true)
	}
	return nil, nil
}

func offCommand(env *env, args []dub.Node) (dub.Node, error) {
	if len(args) == 1 {
		if _, ok := args[0].(dub.Wildcard); ok {
			for _, n := range env.engine.Snapshot() {
				env.engine.NoteEvent(n.Pitch, n.Instrument, false)
			}
			return nil, nil
		}
	}
	pitches, err := resolvePitches(args)
	if err != nil {
		return nil, err
	}
	for _, p := range pitches {
		env.engine.NoteEvent(p, env.inst, false)
	}
	return nil, nil
}

// tap presses the given pitches and releases them after a duration in
// seconds, e.g.: tap 0.5 c4 e4 g4
func tapCommand(env *env, args []dub.Node) (dub.Node, error) {
	dur, err := seconds(args[0])
	if err != nil {
		return nil, err
	}
	pitches, err := resolvePitches(args[1:])
	if err != nil {
		return nil, err
	}
	inst := env.inst
	for _, p := range pitches {
		env.engine.NoteEvent(p, inst, true)
	}
	time.AfterFunc(time.Duration(dur*float64(time.Second)), func() {
		for _, p := range pitches {
			env.engine.NoteEvent(p, inst, false)
		}
	})
	return nil, nil
}

// strum plays characters from the key row as a chord, e.g.: strum "zcb" 1
func strumCommand(env *env, args []dub.Node) (dub.Node, error) {
	keys, ok := args[0].(dub.String)
	if !ok {
		return nil, fmt.Errorf("expected a string of keys, got %v", args[0])
	}
	dur, err := seconds(args[1])
	if err != nil {
		return nil, err
	}
	var pitches []int
	for _, r := range string(keys) {
		p, ok := keyPitch(r, env.octave)
		if !ok {
			return nil, fmt.Errorf("key %q is not on the row %q", r, keyRow)
		}
		pitches = append(pitches, p)
	}
	inst := env.inst
	for _, p := range pitches {
		env.engine.NoteEvent(p, inst, true)
	}
	time.AfterFunc(time.Duration(dur*float64(time.Second)), func() {
		for _, p := range pitches {
			env.engine.NoteEvent(p, inst, false)
		}
	})
	return nil, nil
}

func instCommand(env *env, args []dub.Node) (dub.Node, error) {
	name, ok := args[0].(dub.Identifier)
	if !ok {
		return nil, fmt.Errorf("expected an instrument name, got %v", args[0])
	}
	id, err := findInstrument(env.engine, string(name))
	if err != nil {
		return nil, err
	}
	env.inst = id
	return name, nil
}

func octaveCommand(env *env, args []dub.Node) (dub.Node, error) {
	n, ok := args[0].(dub.Int)
	if !ok || n < 0 || n > 8 {
		return nil, fmt.Errorf("expected an octave between 0 and 8, got %v", args[0])
	}
	env.octave = int(n)
	return nil, nil
}

func setCommand(env *env, args []dub.Node) (dub.Node, error) {
	var device, prop string
	if err := readArgs(args[:2], &device, &prop); err != nil {
		return nil, err
	}
	switch v := args[2].(type) {
	case dub.Int:
		return nil, env.setProp(device, prop, int(v))
	case dub.Float:
		return nil, env.setProp(device, prop, float64(v))
	case dub.String:
		return nil, env.setProp(device, prop, string(v))
	case dub.Identifier:
		return nil, env.setProp(device, prop, string(v))
	default:
		return nil, fmt.Errorf("unsupported property type: %v", v)
	}
}

func getCommand(env *env, args []dub.Node) (dub.Node, error) {
	var device, prop string
	if err := readArgs(args, &device, &prop); err != nil {
		return nil, err
	}
	v, err := env.getProp(device, prop)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case float64:
		return dub.Float(v), nil
	case int:
		return dub.Int(v), nil
	case string:
		return dub.String(v), nil
	default:
		return nil, fmt.Errorf("unsupported property type: %v", v)
	}
}

func notesCommand(env *env, args []dub.Node) (dub.Node, error) {
	fmt.Printf("clock %.2fs\n", env.engine.Clock())
	renderNotes(os.Stdout, env.engine.Snapshot(), env.engine.Instruments())
	return nil, nil
}

func keysCommand(env *env, args []dub.Node) (dub.Node, error) {
	fmt.Println(keyboardDiagram())
	return nil, nil
}

func demoCommand(env *env, args []dub.Node) (dub.Node, error) {
	env.player.play(demoSong, 120, env.inst)
	return nil, nil
}

// bounce renders the demo tune offline and writes it to a WAV file, e.g.:
// bounce "demo.wav" 10
func bounceCommand(env *env, args []dub.Node) (dub.Node, error) {
	file, ok := args[0].(dub.String)
	if !ok {
		return nil, fmt.Errorf("expected a file name, got %v", args[0])
	}
	dur, err := seconds(args[1])
	if err != nil {
		return nil, err
	}
	samples := bounceSong(demoSong, 120, env.inst, dur)
	f, err := os.Create(string(file))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := audio.WriteWAV(f, samples); err != nil {
		return nil, err
	}
	return file, nil
}

func findInstrument(engine *audio.Engine, name string) (int, error) {
	for id, inst := range engine.Instruments() {
		if inst.Name == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown instrument: %s", name)
}

func seconds(arg dub.Node) (float64, error) {
	switch v := arg.(type) {
	case dub.Int:
		return float64(v), nil
	case dub.Float:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a duration in seconds, got %v", arg)
	}
}

func readArgs(args []dub.Node, slots ...interface{}) error {
	if len(args) != len(slots) {
		return fmt.Errorf("not enough arguments")
	}
	for n, arg := range args {
		dest := slots[n]
		switch p := dest.(type) {
		case *string:
			switch s := arg.(type) {
			case dub.String:
				*p = string(s)
			case dub.Identifier:
				*p = string(s)
			default:
				return fmt.Errorf("argument error: expected a string or identifier")
			}
		case *float64:
			f, err := seconds(arg)
			if err != nil {
				return fmt.Errorf("argument error: expected a number")
			}
			*p = f
		default:
			panic(fmt.Sprintf("readArgs: unhandled destination type: %v", p))
		}
	}
	return nil
}
