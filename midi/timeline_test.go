package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chordid/model"
)

func on(ms int64, note uint8) model.ReducedEvent {
	return model.ReducedEvent{OffsetMs: ms, Note: note}
}

func off(ms int64, note uint8) model.ReducedEvent {
	return model.ReducedEvent{OffsetMs: ms, IsNoteOff: true, Note: note}
}

func TestNoteSetChangesBuildsUpAndTearsDown(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 60),
		on(500, 64),
		on(1000, 67),
		off(1500, 60),
	}
	changes := NoteSetChanges(events)

	assert.Equal(t, []model.NoteSetChange{
		{OffsetMs: 0, Notes: model.Notes{60}},
		{OffsetMs: 500, Notes: model.Notes{60, 64}},
		{OffsetMs: 1000, Notes: model.Notes{60, 64, 67}},
		{OffsetMs: 1500, Notes: model.Notes{64, 67}},
	}, changes)
}

func TestNoteSetChangesCollapsesSameMillisecond(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 60),
		on(0, 64),
		on(0, 67),
	}
	changes := NoteSetChanges(events)

	assert.Equal(t, []model.NoteSetChange{
		{OffsetMs: 0, Notes: model.Notes{60, 64, 67}},
	}, changes)
}

func TestNoteSetChangesAppliesOffsBeforeOns(t *testing.T) {
	// retrigger of the same note at the same instant
	events := []model.ReducedEvent{
		on(0, 60),
		on(200, 60),
		off(200, 60),
	}
	changes := NoteSetChanges(events)

	assert.Equal(t, []model.NoteSetChange{
		{OffsetMs: 0, Notes: model.Notes{60}},
		{OffsetMs: 200, Notes: model.Notes{60}},
	}, changes)
}

func TestNoteSetChangesDropsEmptySets(t *testing.T) {
	events := []model.ReducedEvent{
		on(0, 60),
		off(100, 60),
		on(200, 64),
	}
	changes := NoteSetChanges(events)

	assert.Equal(t, []model.NoteSetChange{
		{OffsetMs: 0, Notes: model.Notes{60}},
		{OffsetMs: 200, Notes: model.Notes{64}},
	}, changes)
}

func TestNoteSetChangesOrdersUnsortedInput(t *testing.T) {
	events := []model.ReducedEvent{
		on(1000, 67),
		on(0, 60),
		on(500, 64),
	}
	changes := NoteSetChanges(events)

	assert.Equal(t, 3, len(changes))
	assert.Equal(t, uint32(0), changes[0].OffsetMs)
	assert.Equal(t, uint32(500), changes[1].OffsetMs)
	assert.Equal(t, uint32(1000), changes[2].OffsetMs)
}
