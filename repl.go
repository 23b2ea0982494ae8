package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mrdg/juno/audio"
	"github.com/mrdg/juno/dub"
)

type env struct {
	engine  *audio.Engine
	player  *player
	devices map[string]audio.Device

	inst   int // instrument id for new notes
	octave int // octave the key row plays in
}

func (e *env) setProp(device, prop string, v interface{}) error {
	dev, ok := e.devices[device]
	if !ok {
		return fmt.Errorf("unknown device: %s", device)
	}
	return dev.Set(prop, v)
}

func (e *env) getProp(device, prop string) (interface{}, error) {
	dev, ok := e.devices[device]
	if !ok {
		return nil, fmt.Errorf("unknown device: %s", device)
	}
	return dev.Get(prop)
}

func (e *env) eval(input string) (dub.Node, error) {
	command, err := dub.Parse(input)
	if err != nil {
		return nil, err
	}
	name := string(command.Name)
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity < 0 {
			arity := -cmd.arity
			if len(command.Args) < arity {
				return nil, fmt.Errorf("%s: wrong number of arguments: need at least %v, got %v",
					cmd.name, arity, len(command.Args))
			}
		} else if len(command.Args) != cmd.arity {
			return nil, fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(command.Args))
		}
		result, err := cmd.run(e, command.Args)
		if err != nil {
			return result, fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return result, nil
	}
	return nil, fmt.Errorf("unknown command: %s", name)
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return err
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if result, err := env.eval(line); err != nil {
			fmt.Println(err)
		} else if result != nil {
			fmt.Println(result)
		}
	}
}

type command struct {
	name  string
	run   func(*env, []dub.Node) (dub.Node, error)
	arity int // -n means len(args) must be >= n
}

var commands = []command{
	{"on", onCommand, -1},
	{"off", offCommand, -1},
	{"tap", tapCommand, -2},
	{"strum", strumCommand, 2},
	{"inst", instCommand, 1},
	{"octave", octaveCommand, 1},
	{"set", setCommand, 3},
	{"get", getCommand, 2},
	{"notes", notesCommand, 0},
	{"keys", keysCommand, 0},
	{"demo", demoCommand, 0},
	{"bounce", bounceCommand, 2},
}
