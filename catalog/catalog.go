package catalog

// Kind buckets templates by how strictly they match and how they render.
type Kind int

const (
	Triad Kind = iota
	Seventh
	Extended
	AlteredDominant
	Sus
	AddedTone
	ScaleMode
	SymmetricScale
)

// Shape is one catalog template. Intervals are semitones above the root.
// Essential intervals must all sound for the template to apply; optional
// ones may be omitted with only a light penalty. Base plus the canonical
// Alterations list is the rendered quality; TriadBase is the symbol used
// when a seventh collapses to its triad over a foreign bass.
type Shape struct {
	Name          string
	Intervals     []int
	Essential     []int
	Optional      []int
	Kind          Kind
	Base          string
	Alterations   []string
	TriadBase     string
	Simplifies    bool    // seventh may render as TriadBase over a slash bass
	ThirdOptional bool    // identity survives without any third sounding
	AllowNatural4 bool    // natural eleventh above the bass is part of the sound
	Symmetric     bool    // any chord tone is an equally valid root
	ExactBonus    float64 // awarded when the sounding set equals Intervals
	ScaleName     string  // non-empty for scale kinds
}

// IsScale reports whether the shape matches whole scalar runs rather than
// stacked chords.
func (s *Shape) IsScale() bool {
	return s.Kind == ScaleMode || s.Kind == SymmetricScale
}

// Dominant reports whether the shape carries a major third and a minor
// seventh.
func (s *Shape) Dominant() bool {
	return s.HasInterval(4) && s.HasInterval(10)
}

func (s *Shape) HasInterval(iv int) bool {
	for _, v := range s.Intervals {
		if v == iv {
			return true
		}
	}
	return false
}

func (s *Shape) IsEssential(iv int) bool {
	for _, v := range s.Essential {
		if v == iv {
			return true
		}
	}
	return false
}

func (s *Shape) IsOptional(iv int) bool {
	for _, v := range s.Optional {
		if v == iv {
			return true
		}
	}
	return false
}

// SeventhInterval returns the template's seventh (10 or 11) and whether it
// has one.
func (s *Shape) SeventhInterval() (int, bool) {
	if s.HasInterval(10) {
		return 10, true
	}
	if s.HasInterval(11) {
		return 11, true
	}
	return 0, false
}

// Shapes returns the full catalog in declaration order. Earlier entries win
// exact ties.
func Shapes() []Shape {
	return all
}

// ByName looks a template up by its catalog name.
func ByName(name string) *Shape {
	for i := range all {
		if all[i].Name == name {
			return &all[i]
		}
	}
	return nil
}

var all []Shape

func init() {
	all = append(all, chordShapes...)
	all = append(all, scaleShapes...)
}
