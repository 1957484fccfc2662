package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

var letterClasses = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNote accepts either a raw MIDI number ("60") or scientific pitch
// notation ("C4", "F#3", "Bb2", where C4 is middle C = 60).
func ParseNote(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty note")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < LowestPlayable || n > HighestPlayable {
			return 0, fmt.Errorf("note %d outside playable range %d..%d", n, LowestPlayable, HighestPlayable)
		}
		return uint8(n), nil
	}

	pc, ok := letterClasses[s[0]&^0x20]
	if !ok {
		return 0, fmt.Errorf("bad note name %q", s)
	}
	rest := s[1:]
	for len(rest) > 0 {
		if rest[0] == '#' {
			pc++
		} else if rest[0] == 'b' {
			pc--
		} else {
			break
		}
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("bad note name %q", s)
	}

	n := (octave+1)*12 + ((pc%12)+12)%12
	if n < LowestPlayable || n > HighestPlayable {
		return 0, fmt.Errorf("note %q outside playable range", s)
	}
	return uint8(n), nil
}
