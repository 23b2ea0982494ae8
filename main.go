package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mrdg/juno/audio"
)

func main() {
	var (
		instName = flag.String("inst", "default", "instrument to play")
		octave   = flag.Int("octave", 4, "octave the key row plays in")
		run      = flag.String("run", "", "file with commands to run at startup")
	)
	flag.Parse()

	engine := audio.NewEngine(audio.NewProps(), audio.Presets())
	inst, err := findInstrument(engine, *instName)
	if err != nil {
		log.Fatal(err)
	}

	var commands []string
	if *run != "" {
		f, err := os.Open(*run)
		if err != nil {
			log.Fatal(err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			commands = append(commands, strings.TrimSpace(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		f.Close()
	}

	sink, err := audio.NewSink()
	if err != nil {
		log.Fatal(err)
	}
	defer sink.Stop()

	player := &player{eng: engine}
	sink.AddTicker(player)
	sink.AddSources(engine)

	if err := sink.Start(); err != nil {
		log.Fatal(err)
	}

	env := &env{
		engine:  engine,
		player:  player,
		devices: map[string]audio.Device{"engine": engine},
		inst:    inst,
		octave:  *octave,
	}

	fmt.Println(keyboardDiagram())

	for _, line := range commands {
		if line == "" {
			continue
		}
		if _, err := env.eval(line); err != nil {
			log.Fatal(err)
		}
	}

	if err := repl(env); err != nil && err != io.EOF {
		fmt.Println(err)
		os.Exit(1)
	}
}
