package midi

import (
	"fmt"
	"sort"

	"chordid/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReduceEvents flattens every track of an SMF into note on/off events with
// absolute offsets. Offsets are kept in millis; that is plenty of precision
// for naming what is sounding and keeps the numbers small.
func ReduceEvents(s *smf.SMF) []model.ReducedEvent {

	// TimeAt panics on some malformed tempo maps
	defer func() {
		if err := recover(); err != nil {
			fmt.Println(err)
		}
	}()

	var reduced []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reduced = append(reduced, model.ReducedEvent{
					OffsetMs: s.TimeAt(absTicks) / 1000,
					Note:     key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reduced = append(reduced, model.ReducedEvent{
					OffsetMs:  s.TimeAt(absTicks) / 1000,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}
	return reduced
}

// NoteSetChanges replays reduced events into the time-ordered series of
// complete sounding note sets. Events landing on the same millisecond
// collapse into one entry, note-offs applying before note-ons so retriggers
// don't produce phantom sets. Empty sets are dropped.
func NoteSetChanges(events []model.ReducedEvent) []model.NoteSetChange {
	sorted := make([]model.ReducedEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OffsetMs != sorted[j].OffsetMs {
			return sorted[i].OffsetMs < sorted[j].OffsetMs
		}
		return sorted[i].IsNoteOff && !sorted[j].IsNoteOff
	})

	var changes []model.NoteSetChange
	pressed := map[uint8]bool{}
	for _, evt := range sorted {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		if len(pressed) == 0 {
			continue
		}

		notes := make(model.Notes, 0, len(pressed))
		for note := range pressed {
			notes = append(notes, note)
		}
		sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

		offset := uint32(evt.OffsetMs)
		if n := len(changes); n > 0 && changes[n-1].OffsetMs == offset {
			changes[n-1].Notes = notes
			continue
		}
		changes = append(changes, model.NoteSetChange{OffsetMs: offset, Notes: notes})
	}
	return changes
}
