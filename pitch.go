package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch numbers are MIDI-style: A4 = 69, C4 = 60, one semitone per step.

var pitchNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

var letterSemitone = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

func pitchName(pitch int) string {
	return fmt.Sprintf("%s%d", pitchNames[((pitch%12)+12)%12], pitch/12-1)
}

// parsePitch reads a note name like "c4", "f#3" or "eb2", or a bare MIDI
// number.
func parsePitch(s string) (int, error) {
	s = strings.ToLower(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 127 {
			return 0, fmt.Errorf("pitch out of range: %d", n)
		}
		return n, nil
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid pitch: %q", s)
	}
	semitone, ok := letterSemitone[s[0]]
	if !ok {
		return 0, fmt.Errorf("invalid pitch: %q", s)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid pitch: %q", s)
	}
	pitch := (octave+1)*12 + semitone
	if pitch < 0 || pitch > 127 {
		return 0, fmt.Errorf("pitch out of range: %q", s)
	}
	return pitch, nil
}

// keyRow maps a QWERTY row to semitones: index i sounds i semitones above
// the C of the current octave, mimicking two piano octaves across the
// bottom of the keyboard.
const keyRow = "zsxdcvgbhnjm,l.;/"

func keyPitch(key rune, octave int) (int, bool) {
	i := strings.IndexRune(keyRow, key)
	if i < 0 {
		return 0, false
	}
	return (octave+1)*12 + i, true
}

func keyboardDiagram() string {
	return `
        |   |   | |   |   |   |   | |   | |   |   |   |   | |   |   |
        |   | S | | D |   |   | G | | H | | J |   |   | L | | ; |   |
        |   |___| |___|   |   |___| |___| |___|   |   |___| |___|   |
Note    |  C  |  D  |  E  |  F  |  G  |  A  |  B  |     |     |     |
Key     |  Z  |  X  |  C  |  V  |  B  |  N  |  M  |  ,  |  .  |  /  |
        |_____|_____|_____|_____|_____|_____|_____|_____|_____|_____|
`
}
