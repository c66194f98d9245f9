package controls

import (
	"fmt"
	"strings"
	"unicode"
)

type binding struct {
	field Field
	dir   int
}

// Keys maps letters to slider nudges and toggles. C creates, X resets.
var Keys = map[rune]binding{
	'R': {Radius, 1}, 'F': {Radius, -1},
	'W': {Winding, 1}, 'S': {Winding, -1},
	'I': {Irregularity, 1}, 'K': {Irregularity, -1},
	'V': {VerticalIrregularity, 1}, 'B': {VerticalIrregularity, -1},
	'P': {Points, 1}, 'L': {Points, -1},
	'N': {Seed, 1}, 'M': {Seed, -1},
	'E': {FlattenEnds, 1},
	'D': {DeletePrevious, 1},
	'U': {LiveUpdate, 1},
}

// Press handles one key press. Coarse presses move sliders ten steps.
// It reports whether the key was bound.
func (c *Controls) Press(key rune, coarse bool) (bool, error) {
	key = unicode.ToUpper(key)
	switch key {
	case 'C':
		_, err := c.Create()
		return true, err
	case 'X':
		c.Reset()
		return true, nil
	}

	b, ok := Keys[key]
	if !ok {
		return false, nil
	}
	n := b.dir
	if coarse && !b.field.Toggle() {
		n *= 10
	}
	return true, c.Step(b.field, n)
}

// Repeats reports whether holding key should keep acting on it. Only slider
// nudges repeat; create, reset and toggles fire once per press.
func Repeats(key rune) bool {
	b, ok := Keys[unicode.ToUpper(key)]
	return ok && !b.field.Toggle()
}

// Help lists the key bindings
func Help() string {
	var sb strings.Builder
	for f := Radius; f <= LiveUpdate; f++ {
		var up, down rune
		for k, b := range Keys {
			if b.field != f {
				continue
			}
			if b.dir > 0 {
				up = k
			} else {
				down = k
			}
		}
		if down == 0 {
			fmt.Fprintf(&sb, "  %c      toggle %v\n", up, f)
			continue
		}
		fmt.Fprintf(&sb, "  %c / %c  %v\n", up, down, f)
	}
	sb.WriteString("  C      create\n  X      reset\n  shift  ten steps\n")
	return sb.String()
}
