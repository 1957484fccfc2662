// Package engine resolves a set of sounding MIDI notes to a single chord
// or scale label, or reports that no label is warranted.
package engine

import (
	"chordid/catalog"
	"chordid/model"
	"chordid/pitch"
	"chordid/render"
)

// MinClasses is the identity floor: below three distinct pitch classes
// nothing is called a chord.
const MinClasses = 3

// Scalar-run detection thresholds.
const (
	MinScaleClasses = 5
	MinScaleSpan    = 12
)

type Options struct {
	PreferFlats bool
	Weights     *Weights
}

type Engine struct {
	shapes      []catalog.Shape
	weights     Weights
	preferFlats bool
}

func New(opts Options) *Engine {
	w := DefaultWeights
	if opts.Weights != nil {
		w = *opts.Weights
	}
	return &Engine{
		shapes:      catalog.Shapes(),
		weights:     w,
		preferFlats: opts.PreferFlats,
	}
}

// Result is a resolved label plus enough structure for callers that want
// more than the string.
type Result struct {
	Label     string
	Root      int
	Bass      int
	ShapeName string
	IsScale   bool
}

// Identify resolves a note set. The second return is false when the notes
// don't add up to anything nameable. Same notes in, same label out, no
// matter the order the notes arrive in.
func (e *Engine) Identify(notes model.Notes) (Result, bool) {
	facts := pitch.Normalize(notes)
	if len(facts.Classes) < MinClasses {
		return Result{}, false
	}

	scalarRun := len(facts.Classes) >= MinScaleClasses &&
		facts.Span >= MinScaleSpan &&
		pitch.Stepwise(facts.Notes)

	cands := e.generate(facts, scalarRun)
	if len(cands) == 0 {
		return Result{}, false
	}

	best := 0
	for i := 1; i < len(cands); i++ {
		if e.better(&cands[i], &cands[best], facts.BassClass) {
			best = i
		}
	}

	r := resolution{facts: facts, cands: cands, winner: cands[best]}
	for _, rule := range overrideRules {
		if rule.apply(e, &r) == ruleRejected {
			return Result{}, false
		}
	}

	label := render.Label(render.Match{
		Root:       r.winner.Root,
		Shape:      r.winner.Shape,
		Bass:       facts.BassClass,
		Slash:      r.slash,
		Simplified: r.simplified,
	}, e.preferFlats)

	return Result{
		Label:     label,
		Root:      r.winner.Root,
		Bass:      facts.BassClass,
		ShapeName: r.winner.Shape.Name,
		IsScale:   r.winner.Shape.IsScale(),
	}, true
}
