package main

import (
	"fmt"
	"io"

	"github.com/mrdg/juno/audio"
)

// renderNotes prints the live note list: pitch name, frequency, instrument,
// and whether the key is still held or the note is ringing out.
func renderNotes(w io.Writer, notes []audio.Note, instruments []*audio.Instrument) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "no notes")
		return
	}
	for _, n := range notes {
		name := "?"
		if n.Instrument >= 0 && n.Instrument < len(instruments) {
			name = instruments[n.Instrument].Name
		}
		state := colorize("held", colorGreen)
		if !n.Sounding() {
			state = colorize("releasing", colorYellow)
		}
		fmt.Fprintf(w, "%s %8.2f Hz  %-10s %s\n",
			colorize(fmt.Sprintf("%-4s", pitchName(n.Pitch)), colorBlue),
			audio.PitchFreq(n.Pitch), name, state)
	}
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
