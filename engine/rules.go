package engine

import (
	"chordid/catalog"
	"chordid/pitch"
)

type outcome int

const (
	ruleKeep outcome = iota
	ruleReplaced
	ruleRejected
)

// resolution carries the winning candidate through the override chain.
// Rules may relabel it, attach slash/simplification rendering, or throw
// the whole identification out.
type resolution struct {
	facts      pitch.Facts
	cands      []Candidate
	winner     Candidate
	slash      bool
	simplified bool
}

type overrideRule struct {
	name  string
	apply func(e *Engine, r *resolution) outcome
}

// The chain runs in order on the selected winner. Rejection is terminal,
// so no later rule or earlier boost can resurrect a thrown-out reading.
var overrideRules = []overrideRule{
	{name: "reject-buried-eleventh", apply: rejectBuriedEleventh},
	{name: "sixth-over-minor-seventh", apply: sixthOverMinorSeventh},
	{name: "slash-for-foreign-bass", apply: slashForForeignBass},
	{name: "clear-triad-over-bass", apply: clearTriadOverBass},
}

// A major third clashing with a natural eleventh in the upper structure is
// not a chord anybody voices on purpose. The eleventh is tolerable only
// when it is confined to the bass note itself.
func rejectBuriedEleventh(e *Engine, r *resolution) outcome {
	w := &r.winner
	if w.Shape.IsScale() || w.Shape.AllowNatural4 {
		return ruleKeep
	}
	third := (w.Root + 4) % 12
	eleventh := (w.Root + 5) % 12
	if !w.Shape.HasInterval(4) || !r.facts.Has(third) || !r.facts.Has(eleventh) {
		return ruleKeep
	}
	if r.facts.UpperHas(eleventh) {
		return ruleRejected
	}
	return ruleKeep
}

// A minor seventh whose own minor third is in the bass is spelled the
// other way round: Am7 over C is C6.
func sixthOverMinorSeventh(e *Engine, r *resolution) outcome {
	w := &r.winner
	if w.Shape.Name != "minor7" {
		return ruleKeep
	}
	bass := r.facts.BassClass
	if ((bass-w.Root)%12+12)%12 != 3 {
		return ruleKeep
	}
	// the rewrite needs the sixth chord's third and sixth actually sounding
	if !r.facts.Has((bass+4)%12) || !r.facts.Has(w.Root) {
		return ruleKeep
	}
	name := "6"
	if !r.facts.Has((bass + 7) % 12) {
		name = "6_no5"
	}
	shape := catalog.ByName(name)
	if shape == nil {
		return ruleKeep
	}
	r.winner = Candidate{Root: bass, Shape: shape, Matched: len(r.facts.Classes), Exact: true}
	r.winner.Score = e.score(&r.winner, r.facts)
	return ruleReplaced
}

// slashForForeignBass decides whether a foreign bass note earns slash
// notation. A doubled root claims the chord regardless of what is
// underneath, and a dominant sitting on a bare root/fifth bass octave
// needs no slash either. A seventh sounding only once collapses to its
// triad over the slash.
func slashForForeignBass(e *Engine, r *resolution) outcome {
	w := &r.winner
	if w.Shape.IsScale() || w.Root == r.facts.BassClass {
		return ruleKeep
	}
	if r.facts.Doubled(w.Root) {
		return ruleKeep
	}
	bassIv := ((r.facts.BassClass-w.Root)%12 + 12) % 12
	if w.Shape.Dominant() && (bassIv == 5 || bassIv == 7) && e.plainDominantBass(w.Root, w.Shape, r.facts) {
		return ruleKeep
	}
	r.slash = true
	if w.Shape.Simplifies {
		if seventh, ok := w.Shape.SeventhInterval(); ok {
			if r.facts.Multiplicity[(w.Root+seventh)%12] == 1 {
				r.simplified = true
			}
		}
	}
	return ruleReplaced
}

// clearTriadOverBass rewrites an awkward bass-rooted reading when the
// notes above the bass spell a plain triad or seventh on their own:
// D9(sus) on a doubled D bass with C E G above it is really C(add9)/D.
func clearTriadOverBass(e *Engine, r *resolution) outcome {
	w := &r.winner
	if w.Shape.IsScale() || w.Root != r.facts.BassClass {
		return ruleKeep
	}
	if !complexReading(w, r.facts) {
		return ruleKeep
	}
	bass := r.facts.BassClass

	if r.facts.Doubled(bass) {
		for i := range r.cands {
			c := &r.cands[i]
			if c.Root == bass || !c.Exact || c.Shape.Kind != catalog.AddedTone {
				continue
			}
			if !c.Shape.HasInterval(((bass-c.Root)%12 + 12) % 12) {
				continue
			}
			r.winner = *c
			r.slash = true
			return ruleReplaced
		}
		return ruleKeep
	}

	remaining := make([]int, 0, len(r.facts.Classes))
	for _, pc := range r.facts.Classes {
		if pc != bass {
			remaining = append(remaining, pc)
		}
	}
	if len(remaining) < 3 {
		return ruleKeep
	}
	if repl := explainExactly(e.shapes, remaining); repl != nil {
		r.winner = *repl
		r.winner.Score = e.score(&r.winner, r.facts)
		r.slash = true
		return ruleReplaced
	}
	return ruleKeep
}

// complexReading marks winners worth second-guessing: added-tone and sus
// spellings, or anything that never sounded a third without being built
// that way.
func complexReading(w *Candidate, facts pitch.Facts) bool {
	if w.Shape.Kind == catalog.AddedTone || w.Shape.Kind == catalog.Sus {
		return true
	}
	if w.Shape.ThirdOptional {
		return false
	}
	hasThird := (w.Shape.HasInterval(3) && facts.Has((w.Root+3)%12)) ||
		(w.Shape.HasInterval(4) && facts.Has((w.Root+4)%12))
	return !hasThird
}

// explainExactly finds the first triad or seventh template, in catalog
// priority order, whose interval set equals the given pitch classes. A
// partial match is not "clear" enough to steal the label, so nothing less
// than the complete template counts.
func explainExactly(shapes []catalog.Shape, classes []int) *Candidate {
	for i := range shapes {
		shape := &shapes[i]
		if shape.Kind != catalog.Triad && shape.Kind != catalog.Seventh {
			continue
		}
		if shape.Name == "power" || len(shape.Intervals) != len(classes) {
			continue
		}
		for _, root := range classes {
			ok := true
			for _, pc := range classes {
				if !shape.HasInterval(((pc-root)%12 + 12) % 12) {
					ok = false
					break
				}
			}
			if ok {
				return &Candidate{Root: root, Shape: shape, Matched: len(classes), Exact: true}
			}
		}
	}
	return nil
}
