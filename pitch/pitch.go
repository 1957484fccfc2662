package pitch

import (
	"fmt"
	"sort"

	"chordid/model"
)

// Playable piano range. Anything outside is a caller bug.
const (
	LowestPlayable  = 21
	HighestPlayable = 108
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// Name spells a pitch class 0..11, C-based.
func Name(pc int, preferFlats bool) string {
	pc = ((pc % 12) + 12) % 12
	if preferFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}

// Facts is everything downstream analysis needs to know about a set of
// sounding notes, derived once up front.
type Facts struct {
	Notes        model.Notes // sorted, duplicates removed
	Classes      []int       // sorted unique pitch classes
	Multiplicity map[int]int // pitch class -> distinct octaves sounding
	Lowest       uint8
	Highest      uint8
	Span         int
	BassClass    int
	BassOctave   map[int]bool // pitch classes sounding strictly below Lowest+12
}

// Normalize derives Facts from raw MIDI note numbers. Panics when a note
// falls outside the playable range or the input is empty.
func Normalize(notes model.Notes) Facts {
	if len(notes) == 0 {
		panic("pitch: empty note set")
	}
	sorted := make(model.Notes, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	deduped := make(model.Notes, 0, len(sorted))
	for i, n := range sorted {
		if n < LowestPlayable || n > HighestPlayable {
			panic(fmt.Sprintf("pitch: note %d outside playable range", n))
		}
		if i > 0 && sorted[i-1] == n {
			continue
		}
		deduped = append(deduped, n)
	}

	f := Facts{
		Notes:        deduped,
		Multiplicity: map[int]int{},
		BassOctave:   map[int]bool{},
		Lowest:       deduped[0],
		Highest:      deduped[len(deduped)-1],
	}
	f.Span = int(f.Highest) - int(f.Lowest)
	f.BassClass = int(f.Lowest % 12)
	for _, n := range deduped {
		pc := int(n % 12)
		if f.Multiplicity[pc] == 0 {
			f.Classes = append(f.Classes, pc)
		}
		f.Multiplicity[pc]++
		if int(n) < int(f.Lowest)+12 {
			f.BassOctave[pc] = true
		}
	}
	sort.Ints(f.Classes)
	return f
}

func (f Facts) Has(pc int) bool {
	return f.Multiplicity[((pc%12)+12)%12] > 0
}

// Doubled reports whether a pitch class sounds in more than one octave.
func (f Facts) Doubled(pc int) bool {
	return f.Multiplicity[((pc%12)+12)%12] >= 2
}

// IntervalsFrom maps the sounding pitch classes to intervals above root,
// sorted ascending.
func (f Facts) IntervalsFrom(root int) []int {
	out := make([]int, 0, len(f.Classes))
	for _, pc := range f.Classes {
		out = append(out, ((pc-root)%12+12)%12)
	}
	sort.Ints(out)
	return out
}

// UpperHas reports whether a pitch class sounds anywhere above the lowest
// note (i.e. not confined to the bass).
func (f Facts) UpperHas(pc int) bool {
	pc = ((pc % 12) + 12) % 12
	for _, n := range f.Notes {
		if n == f.Lowest {
			continue
		}
		if int(n%12) == pc {
			return true
		}
	}
	return false
}

// Playable filters a note set down to the playable range. Real midi files
// contain out-of-range junk often enough that callers feeding files in
// want the filter rather than the panic.
func Playable(notes model.Notes) model.Notes {
	var out model.Notes
	for _, n := range notes {
		if n >= LowestPlayable && n <= HighestPlayable {
			out = append(out, n)
		}
	}
	return out
}

// StepwiseRatio is the share of consecutive note gaps that must be whole
// steps or smaller for a run to count as scalar motion.
const StepwiseRatio = 0.6

// Stepwise reports whether sorted notes move mostly by step.
func Stepwise(notes model.Notes) bool {
	if len(notes) < 2 {
		return false
	}
	adjacent := 0
	for i := 1; i < len(notes); i++ {
		if int(notes[i])-int(notes[i-1]) <= 2 {
			adjacent++
		}
	}
	return float64(adjacent)/float64(len(notes)-1) >= StepwiseRatio
}
