package dub

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{
			input: "on c4 e4 g4",
			want: Command{
				Name: "on",
				Args: []Node{Identifier("c4"), Identifier("e4"), Identifier("g4")},
			},
		},
		{
			input: "tap 0.5 a#3 69",
			want: Command{
				Name: "tap",
				Args: []Node{Float(0.5), Identifier("a#3"), Int(69)},
			},
		},
		{
			input: "off *",
			want: Command{
				Name: "off",
				Args: []Node{Wildcard{}},
			},
		},
		{
			input: `bounce "out.wav" 10`,
			want: Command{
				Name: "bounce",
				Args: []Node{String("out.wav"), Int(10)},
			},
		},
		{
			input: "notes",
			want:  Command{Name: "notes"},
		},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q):\nwant: %+v\ngot:  %+v", tt.input, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"42 on",
		`"quoted" on`,
	} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}
