package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"chordid/model"
	"chordid/pitch"
)

func label(t *testing.T, notes model.Notes) (string, bool) {
	t.Helper()
	res, ok := New(Options{PreferFlats: true}).Identify(notes)
	return res.Label, ok
}

func assertLabel(t *testing.T, notes model.Notes, want string) {
	t.Helper()
	got, ok := label(t, notes)
	assert.True(t, ok, "expected a label for %v", notes)
	assert.Equal(t, want, got)
}

func assertNoMatch(t *testing.T, notes model.Notes) {
	t.Helper()
	_, ok := label(t, notes)
	assert.False(t, ok, "expected no label for %v", notes)
}

func TestBasicTriads(t *testing.T) {
	assertLabel(t, model.Notes{60, 64, 67}, "C")
	assertLabel(t, model.Notes{60, 63, 67}, "Cm")
	assertLabel(t, model.Notes{60, 63, 66}, "C°")
	assertLabel(t, model.Notes{60, 65, 67}, "Csus4")
	assertLabel(t, model.Notes{61, 65, 68}, "Db")
}

func TestSharpSpelling(t *testing.T) {
	res, ok := New(Options{}).Identify(model.Notes{61, 65, 68})
	assert.True(t, ok)
	assert.Equal(t, "C#", res.Label)
}

func TestMinorSeventhRootPosition(t *testing.T) {
	assertLabel(t, model.Notes{45, 60, 64, 67}, "Am7")
}

func TestSixthWhenRootDoubledInBass(t *testing.T) {
	assertLabel(t, model.Notes{36, 48, 57, 60, 64, 67}, "C6")
}

func TestSeventhCollapsesOverSingleForeignBass(t *testing.T) {
	assertLabel(t, model.Notes{46, 60, 64, 67}, "C/Bb")
	assertLabel(t, model.Notes{52, 65, 69, 72}, "F/E")
	assertLabel(t, model.Notes{50, 64, 67, 71}, "Em/D")
	assertLabel(t, model.Notes{43, 57, 60, 64}, "Am/G")
}

func TestDoubledSeventhKeepsFullSymbol(t *testing.T) {
	assertLabel(t, model.Notes{46, 58, 60, 64, 67}, "C7/Bb")
}

func TestDoubledRootSuppressesSlash(t *testing.T) {
	assertLabel(t, model.Notes{45, 55, 57, 60, 64}, "Am7")
	assertLabel(t, model.Notes{40, 53, 65, 69, 72}, "FΔ7")
	assertLabel(t, model.Notes{53, 64, 65, 69, 72}, "FΔ7")
}

func TestDiminishedSeventhWithoutThird(t *testing.T) {
	assertLabel(t, model.Notes{60, 66, 69}, "C°7")
}

func TestHalfDiminished(t *testing.T) {
	assertLabel(t, model.Notes{60, 63, 66, 70}, "Cø7")
}

func TestAlteredDominants(t *testing.T) {
	assertLabel(t, model.Notes{60, 61, 64, 70}, "C7(b9)")
	assertLabel(t, model.Notes{48, 55, 58, 61, 64, 69}, "C13(b9)")
	assertLabel(t, model.Notes{43, 55, 56, 59, 63, 65}, "G7(b9,b13)")
}

func TestDominantOverPlainBassOctaveSkipsSlash(t *testing.T) {
	// C2 G2 B2 under D3 F3: the eleventh only sounds as the bass itself
	assertLabel(t, model.Notes{36, 43, 47, 50, 53}, "G11")
}

func TestShellReadingsNeverOutrankSoundingRoots(t *testing.T) {
	// a rootless Gb7(b9,#11) would explain every note here, but no Gb
	// sounds, so the plain seventh keeps the label
	assertLabel(t, model.Notes{46, 60, 64, 67}, "C/Bb")
	// C E F is a D minor ninth upper structure with no D anywhere
	assertNoMatch(t, model.Notes{60, 64, 65})
}

func TestRootPositionTriadBeatsItsRelativeShell(t *testing.T) {
	// Cm and Eb6(no5) spell the same classes, as do C° and Gb°7 without
	// its third; the bass note decides
	assertLabel(t, model.Notes{60, 63, 67}, "Cm")
	assertLabel(t, model.Notes{60, 63, 66}, "C°")
	assertLabel(t, model.Notes{51, 60, 67}, "Eb6")
}

func TestCandidatesRequireASoundingRoot(t *testing.T) {
	e := New(Options{PreferFlats: true})
	facts := pitch.Normalize(model.Notes{46, 60, 64, 67})
	for _, c := range e.generate(facts, false) {
		assert.True(t, facts.Has(c.Root), "rootless candidate %v at %v", c.Shape.Name, c.Root)
	}
}

func TestClearTriadOverDoubledBass(t *testing.T) {
	assertLabel(t, model.Notes{50, 62, 64, 67, 72}, "C(add9)/D")
}

func TestSixthStaysWhenNothingClearerAbove(t *testing.T) {
	assertLabel(t, model.Notes{51, 55, 60}, "Eb6")
}

func TestScaleRuns(t *testing.T) {
	assertLabel(t, model.Notes{65, 67, 69, 70, 72, 74, 76, 77}, "F Ionian")
	assertLabel(t, model.Notes{48, 50, 52, 53, 55, 57, 59, 60}, "C Ionian")
	assertLabel(t, model.Notes{60, 62, 64, 67, 69, 72}, "C Major Pentatonic")
}

func TestScaleNeedsOctaveSpan(t *testing.T) {
	// six diatonic notes inside a single octave read as a chord
	got, ok := label(t, model.Notes{60, 62, 64, 65, 67, 69})
	assert.True(t, ok)
	assert.Equal(t, "Dm11/C", got)
}

func TestMajorThirdAgainstUpperEleventhMatchesNothing(t *testing.T) {
	assertNoMatch(t, model.Notes{60, 62, 64, 65, 67, 71})
	assertNoMatch(t, model.Notes{60, 64, 65})
}

func TestTooFewPitchClasses(t *testing.T) {
	assertNoMatch(t, model.Notes{60})
	assertNoMatch(t, model.Notes{60, 62})
	assertNoMatch(t, model.Notes{48, 60, 67, 72})
}

func TestUnmatchableSets(t *testing.T) {
	assertNoMatch(t, model.Notes{60, 61, 62})
	assertNoMatch(t, model.Notes{60, 61, 70})
}

func TestTranspositionInvariance(t *testing.T) {
	for tr := 0; tr < 12; tr++ {
		tr := tr
		t.Run(fmt.Sprintf("up %v semitones", tr), func(t *testing.T) {
			notes := model.Notes{uint8(45 + tr), uint8(60 + tr), uint8(64 + tr), uint8(67 + tr)}
			want := pitch.Name(9+tr, true) + "m7"
			assertLabel(t, notes, want)
		})
	}
}

func TestOrderInsensitive(t *testing.T) {
	a, okA := label(t, model.Notes{60, 64, 67, 46})
	b, okB := label(t, model.Notes{46, 67, 60, 64})
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, a, b)
}

func TestDeterministic(t *testing.T) {
	notes := model.Notes{50, 64, 67, 71}
	first, _ := label(t, notes)
	for i := 0; i < 20; i++ {
		again, _ := label(t, notes)
		assert.Equal(t, first, again)
	}
}

func TestOctaveDoublingKeepsIdentity(t *testing.T) {
	plain, _ := label(t, model.Notes{45, 60, 64, 67})
	doubled, _ := label(t, model.Notes{45, 57, 60, 64, 67, 72})
	assert.Equal(t, plain, doubled)
}

func TestPanicsOutsidePlayableRange(t *testing.T) {
	assert.Panics(t, func() {
		New(Options{}).Identify(model.Notes{10, 60, 64, 67})
	})
}
