// Package render turns resolved matches into canonical label strings.
// Rendering is pure: the same match always yields the same label.
package render

import (
	"strings"

	"chordid/catalog"
	"chordid/pitch"
)

// Match is what the renderer needs from a resolved identification.
type Match struct {
	Root       int
	Shape      *catalog.Shape
	Bass       int
	Slash      bool
	Simplified bool
}

// Label renders the canonical string for a match. Scales come out as
// "<Root> <Scale Name>"; chords as root + quality, alterations in their
// catalog order inside parentheses, and "/<bass>" when slashed.
func Label(m Match, preferFlats bool) string {
	root := pitch.Name(m.Root, preferFlats)
	if m.Shape.IsScale() {
		return root + " " + m.Shape.ScaleName
	}

	quality := m.Shape.Base
	alterations := m.Shape.Alterations
	if m.Simplified {
		quality = m.Shape.TriadBase
		alterations = nil
	}

	var b strings.Builder
	b.WriteString(root)
	b.WriteString(quality)
	if len(alterations) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(alterations, ","))
		b.WriteString(")")
	}
	if m.Slash {
		b.WriteString("/")
		b.WriteString(pitch.Name(m.Bass, preferFlats))
	}
	return b.String()
}
