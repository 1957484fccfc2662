package model

// LabeledChange pairs a timeline entry with the label the engine
// resolved for it. Matched is false for the no-chord outcome.
type LabeledChange struct {
	OffsetMs uint32
	Label    string
	Matched  bool
}

type FileAnalysis struct {
	Path     string
	Metadata *MidiMetadata
	Labels   []LabeledChange
}

type MidiMetadata struct {
	Year    uint
	Artist  string
	Release string
	Title   string
}
