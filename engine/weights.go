package engine

// Weights holds every scoring constant in one place so the relative
// priorities stay legible. ScaleCluster dwarfs the chord terms on purpose:
// once a scalar run matches a scale exactly, no stacked-chord reading
// should outrank it. RootInBass must exceed the structural edge a relative
// shell holds over a root-position triad (an extra essential plus the
// biggest shell exact bonus, 45), or Cm in root position reads as Eb6.
type Weights struct {
	EssentialInterval float64 // per essential template interval sounding
	OptionalInterval  float64 // per non-essential template interval sounding
	TemplatePercent   float64 // scaled by share of the template explained
	ExactMatch        float64 // sounding set equals the template
	ExtraPenalty      float64 // per unexplained pitch class
	MissingOptional   float64 // per absent optional interval
	MissingOther      float64 // per absent interval that is neither
	RootInBass        float64 // candidate root is the lowest pitch class
	DominantBassBoost float64 // dominant with its root anchoring the bass octave
	ScaleCluster      float64 // scalar-run scale match
	ScaleRootInBass   float64 // scale tonic is the lowest pitch class
	TieEpsilon        float64 // score gap below which ties are broken structurally
}

var DefaultWeights = Weights{
	EssentialInterval: 30,
	OptionalInterval:  10,
	TemplatePercent:   20,
	ExactMatch:        25,
	ExtraPenalty:      12,
	MissingOptional:   2,
	MissingOther:      8,
	RootInBass:        50,
	DominantBassBoost: 250,
	ScaleCluster:      1000,
	ScaleRootInBass:   40,
	TieEpsilon:        0.5,
}
