package model

type Notes = []uint8

// ReducedEvent is a note-on/off stripped down to what the timeline
// reduction needs.
type ReducedEvent struct {
	OffsetMs  int64
	IsNoteOff bool
	Note      uint8
}

// NoteSetChange is one entry in a file's timeline: the complete set of
// sounding notes after an on/off event at OffsetMs.
type NoteSetChange struct {
	OffsetMs uint32
	Notes    Notes
}

type FileNumToMidiPath = map[uint32]string
