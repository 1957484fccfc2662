package engine

import (
	"chordid/catalog"
	"chordid/pitch"
)

// MaxUnexplained is how many sounding pitch classes an extended or altered
// template may leave unexplained. Everything else must explain the set
// fully.
const MaxUnexplained = 1

// Candidate is one root/template pairing that survived viability checks.
type Candidate struct {
	Root            int
	Shape           *catalog.Shape
	Matched         int
	MissingOptional int
	MissingOther    int
	Extras          int
	Exact           bool
	Score           float64
	order           int
}

func maxUnexplainedFor(k catalog.Kind) int {
	if k == catalog.Extended || k == catalog.AlteredDominant {
		return MaxUnexplained
	}
	return 0
}

// generate tries every template against every root. Scale templates only
// participate when the notes form a scalar run, and must explain the pitch
// classes exactly.
func (e *Engine) generate(facts pitch.Facts, scalarRun bool) []Candidate {
	var out []Candidate
	for root := 0; root < 12; root++ {
		present := map[int]bool{}
		for _, iv := range facts.IntervalsFrom(root) {
			present[iv] = true
		}
		// a template is no reading at all when nobody played its root,
		// however many color tones line up
		if !present[0] {
			continue
		}
		for i := range e.shapes {
			shape := &e.shapes[i]
			// ties fall to catalog declaration order first, root second
			order := i*12 + root
			if shape.IsScale() {
				if !scalarRun {
					continue
				}
				if len(present) != len(shape.Intervals) {
					continue
				}
				exact := true
				for _, iv := range shape.Intervals {
					if !present[iv] {
						exact = false
						break
					}
				}
				if !exact {
					continue
				}
				c := Candidate{Root: root, Shape: shape, Matched: len(shape.Intervals), Exact: true, order: order}
				c.Score = e.score(&c, facts)
				out = append(out, c)
				continue
			}

			viable := true
			matched, missingOpt, missingOther := 0, 0, 0
			for _, iv := range shape.Intervals {
				switch {
				case present[iv]:
					matched++
				case shape.IsEssential(iv):
					viable = false
				case shape.IsOptional(iv):
					missingOpt++
				default:
					missingOther++
				}
				if !viable {
					break
				}
			}
			if !viable {
				continue
			}
			extras := len(present) - matched
			if extras > maxUnexplainedFor(shape.Kind) {
				continue
			}
			c := Candidate{
				Root:            root,
				Shape:           shape,
				Matched:         matched,
				MissingOptional: missingOpt,
				MissingOther:    missingOther,
				Extras:          extras,
				Exact:           extras == 0 && missingOpt == 0 && missingOther == 0,
				order:           order,
			}
			c.Score = e.score(&c, facts)
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) score(c *Candidate, facts pitch.Facts) float64 {
	w := e.weights
	if c.Shape.IsScale() {
		s := w.ScaleCluster + float64(c.Matched)*w.EssentialInterval + w.ExactMatch
		if c.Root == facts.BassClass {
			s += w.ScaleRootInBass
		}
		return s
	}

	s := 0.0
	for _, iv := range c.Shape.Intervals {
		if !facts.Has((c.Root + iv) % 12) {
			continue
		}
		if c.Shape.IsEssential(iv) {
			s += w.EssentialInterval
		} else {
			s += w.OptionalInterval
		}
	}
	s += w.TemplatePercent * float64(c.Matched) / float64(len(c.Shape.Intervals))
	if c.Exact {
		s += w.ExactMatch + c.Shape.ExactBonus
	}
	s -= float64(c.Extras) * w.ExtraPenalty
	s -= float64(c.MissingOptional) * w.MissingOptional
	s -= float64(c.MissingOther) * w.MissingOther
	if c.Root == facts.BassClass {
		s += w.RootInBass
	}
	if c.Shape.Dominant() && e.plainDominantBass(c.Root, c.Shape, facts) {
		s += w.DominantBassBoost
	}
	return s
}

// plainDominantBass reports whether the root itself sounds down in the
// bass octave, everything down there belongs to the template, and an
// upper structure continues above. That is the shell voicing that pins a
// dominant's root even when the lowest note is its fourth or fifth.
func (e *Engine) plainDominantBass(root int, shape *catalog.Shape, facts pitch.Facts) bool {
	if !facts.BassOctave[root] {
		return false
	}
	// a chord sitting entirely inside one octave has no bass shell
	if len(facts.BassOctave) == len(facts.Classes) {
		return false
	}
	for pc := range facts.BassOctave {
		if !shape.HasInterval(((pc-root)%12+12)%12) {
			return false
		}
	}
	return true
}

// better orders candidates: score first, then fewer unexplained notes,
// then root in bass, then catalog declaration order.
func (e *Engine) better(a, b *Candidate, bassClass int) bool {
	diff := a.Score - b.Score
	if diff > e.weights.TieEpsilon {
		return true
	}
	if diff < -e.weights.TieEpsilon {
		return false
	}
	if a.Extras != b.Extras {
		return a.Extras < b.Extras
	}
	aBass := a.Root == bassClass
	bBass := b.Root == bassClass
	if aBass != bBass {
		return aBass
	}
	return a.order < b.order
}
