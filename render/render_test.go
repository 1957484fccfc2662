package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chordid/catalog"
)

func TestPlainQualities(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Label(Match{Root: 0, Shape: catalog.ByName("major")}, true))
	assert.Equal("Am7", Label(Match{Root: 9, Shape: catalog.ByName("minor7")}, true))
	assert.Equal("FΔ7", Label(Match{Root: 5, Shape: catalog.ByName("major7")}, true))
	assert.Equal("C°7", Label(Match{Root: 0, Shape: catalog.ByName("diminished7_no_third")}, true))
	assert.Equal("Cø7", Label(Match{Root: 0, Shape: catalog.ByName("half_diminished7")}, true))
	assert.Equal("C6", Label(Match{Root: 0, Shape: catalog.ByName("6_no5")}, true))
	assert.Equal("C(add9)", Label(Match{Root: 0, Shape: catalog.ByName("add9")}, true))
	assert.Equal("C9(sus)", Label(Match{Root: 0, Shape: catalog.ByName("9sus")}, true))
}

func TestAlterationsRenderInParens(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C7(b9)", Label(Match{Root: 0, Shape: catalog.ByName("7_flat9_no5")}, true))
	assert.Equal("C7(b9,#11)", Label(Match{Root: 0, Shape: catalog.ByName("7_flat9_sharp11")}, true))
	assert.Equal("G7(b9,b13)", Label(Match{Root: 7, Shape: catalog.ByName("7_flat9_flat13_no5")}, true))
	assert.Equal("C13(b9)", Label(Match{Root: 0, Shape: catalog.ByName("13_flat9")}, true))
}

func TestSlashAndSimplification(t *testing.T) {
	assert := assert.New(t)
	dom7 := catalog.ByName("dominant7")
	assert.Equal("C7/Bb", Label(Match{Root: 0, Shape: dom7, Bass: 10, Slash: true}, true))
	assert.Equal("C/Bb", Label(Match{Root: 0, Shape: dom7, Bass: 10, Slash: true, Simplified: true}, true))

	min7 := catalog.ByName("minor7")
	assert.Equal("Em/D", Label(Match{Root: 4, Shape: min7, Bass: 2, Slash: true, Simplified: true}, true))
}

func TestAccidentalSpelling(t *testing.T) {
	m := Match{Root: 1, Shape: catalog.ByName("major")}
	assert.Equal(t, "Db", Label(m, true))
	assert.Equal(t, "C#", Label(m, false))
}

func TestScales(t *testing.T) {
	assert.Equal(t, "F Ionian", Label(Match{Root: 5, Shape: catalog.ByName("ionian")}, true))
	assert.Equal(t, "C Dominant Diminished", Label(Match{Root: 0, Shape: catalog.ByName("diminished_hw")}, true))
}

func TestRenderingIsPure(t *testing.T) {
	m := Match{Root: 0, Shape: catalog.ByName("13_flat9"), Bass: 7, Slash: true}
	assert.Equal(t, Label(m, true), Label(m, true))
}
