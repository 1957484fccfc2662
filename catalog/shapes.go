package catalog

func iv(vals ...int) []int { return vals }

// Chord templates in priority order. When two candidates score level, the
// earlier entry wins, so plain readings come before exotic ones.
var chordShapes = []Shape{
	// triads
	{Name: "major", Intervals: iv(0, 4, 7), Essential: iv(4), Optional: iv(0, 7), Kind: Triad, Base: ""},
	{Name: "minor", Intervals: iv(0, 3, 7), Essential: iv(3), Optional: iv(0, 7), Kind: Triad, Base: "m"},
	{Name: "diminished", Intervals: iv(0, 3, 6), Essential: iv(3, 6), Optional: iv(0), Kind: Triad, Base: "°"},
	{Name: "augmented", Intervals: iv(0, 4, 8), Essential: iv(4, 8), Optional: iv(0), Kind: Triad, Base: "aug", Symmetric: true},
	{Name: "sus2", Intervals: iv(0, 2, 7), Essential: iv(2), Optional: iv(0, 7), Kind: Sus, Base: "sus2"},
	{Name: "sus4", Intervals: iv(0, 5, 7), Essential: iv(5), Optional: iv(0, 7), Kind: Sus, Base: "sus4", AllowNatural4: true},
	{Name: "power", Intervals: iv(0, 7), Essential: iv(7), Optional: iv(0), Kind: Triad, Base: "5"},

	// sevenths
	{Name: "major7", Intervals: iv(0, 4, 7, 11), Essential: iv(4, 11), Optional: iv(0, 7), Kind: Seventh, Base: "Δ7", TriadBase: "", Simplifies: true},
	{Name: "minor7", Intervals: iv(0, 3, 7, 10), Essential: iv(3, 10), Optional: iv(0, 7), Kind: Seventh, Base: "m7", TriadBase: "m", Simplifies: true},
	{Name: "dominant7", Intervals: iv(0, 4, 7, 10), Essential: iv(4, 10), Optional: iv(0, 7), Kind: Seventh, Base: "7", TriadBase: "", Simplifies: true},
	{Name: "half_diminished7", Intervals: iv(0, 3, 6, 10), Essential: iv(3, 6, 10), Optional: iv(0), Kind: Seventh, Base: "ø7", ExactBonus: 60},
	{Name: "diminished7", Intervals: iv(0, 3, 6, 9), Essential: iv(3, 9), Optional: iv(0, 6), Kind: Seventh, Base: "°7", Symmetric: true},
	{Name: "diminished7_no_third", Intervals: iv(0, 6, 9), Essential: iv(6, 9), Optional: iv(0), Kind: Seventh, Base: "°7", ThirdOptional: true, ExactBonus: 45},
	{Name: "minor_major7", Intervals: iv(0, 3, 7, 11), Essential: iv(3, 11), Optional: iv(0, 7), Kind: Seventh, Base: "mΔ7"},
	{Name: "augmented_major7", Intervals: iv(0, 4, 8, 11), Essential: iv(4, 8, 11), Optional: iv(0), Kind: Seventh, Base: "Δ7", Alterations: alt("#5")},
	{Name: "diminished_major7", Intervals: iv(0, 3, 6, 11), Essential: iv(3, 6, 11), Optional: iv(0), Kind: Seventh, Base: "°Δ7", ExactBonus: 80},

	// sixths and added tones
	{Name: "6", Intervals: iv(0, 4, 7, 9), Essential: iv(4, 9), Optional: iv(0, 7), Kind: AddedTone, Base: "6"},
	{Name: "6_no5", Intervals: iv(0, 4, 9), Essential: iv(4, 9), Optional: iv(0), Kind: AddedTone, Base: "6"},
	{Name: "minor6", Intervals: iv(0, 3, 7, 9), Essential: iv(3, 9), Optional: iv(0, 7), Kind: AddedTone, Base: "m6"},
	{Name: "minor6_no5", Intervals: iv(0, 3, 9), Essential: iv(3, 9), Optional: iv(0), Kind: AddedTone, Base: "m6"},
	{Name: "6_9", Intervals: iv(0, 2, 4, 7, 9), Essential: iv(2, 4, 9), Optional: iv(0, 7), Kind: AddedTone, Base: "6/9"},
	{Name: "minor6_9", Intervals: iv(0, 2, 3, 7, 9), Essential: iv(2, 3, 9), Optional: iv(0, 7), Kind: AddedTone, Base: "m6/9"},
	{Name: "add9", Intervals: iv(0, 2, 4, 7), Essential: iv(2, 4, 7), Optional: iv(0), Kind: AddedTone, Base: "(add9)"},
	{Name: "minor_add9", Intervals: iv(0, 2, 3, 7), Essential: iv(2, 3, 7), Optional: iv(0), Kind: AddedTone, Base: "m(add9)"},
	{Name: "add11", Intervals: iv(0, 4, 5, 7), Essential: iv(4, 5, 7), Optional: iv(0), Kind: AddedTone, Base: "(add11)", AllowNatural4: true},

	// extended
	{Name: "major9", Intervals: iv(0, 2, 4, 7, 11), Essential: iv(2, 4, 11), Optional: iv(0, 7), Kind: Extended, Base: "Δ9"},
	{Name: "minor9", Intervals: iv(0, 2, 3, 7, 10), Essential: iv(2, 3, 10), Optional: iv(0, 7), Kind: Extended, Base: "m9"},
	{Name: "dominant9", Intervals: iv(0, 2, 4, 7, 10), Essential: iv(2, 4, 10), Optional: iv(0, 7), Kind: Extended, Base: "9"},
	{Name: "minor_major9", Intervals: iv(0, 2, 3, 7, 11), Essential: iv(3, 11), Optional: iv(0, 2, 7), Kind: Extended, Base: "mΔ9"},
	{Name: "major11", Intervals: iv(0, 2, 4, 5, 7, 11), Essential: iv(4, 5, 11), Optional: iv(0, 2, 7), Kind: Extended, Base: "Δ11"},
	{Name: "minor11", Intervals: iv(0, 2, 3, 5, 7, 10), Essential: iv(3, 5, 10), Optional: iv(0, 2, 7), Kind: Extended, Base: "m11"},
	{Name: "minor11_no5", Intervals: iv(0, 2, 3, 5, 10), Essential: iv(3, 5, 10), Optional: iv(0, 2), Kind: Extended, Base: "m11"},
	{Name: "dominant11", Intervals: iv(0, 2, 4, 5, 7, 10), Essential: iv(4, 10), Optional: iv(0, 2, 7), Kind: Extended, Base: "11"},
	{Name: "major13", Intervals: iv(0, 2, 4, 5, 7, 9, 11), Essential: iv(4, 9, 11), Optional: iv(0, 2, 5, 7), Kind: Extended, Base: "Δ13"},
	{Name: "minor13", Intervals: iv(0, 2, 3, 5, 7, 9, 10), Essential: iv(3, 9, 10), Optional: iv(0, 2, 5, 7), Kind: Extended, Base: "m13"},
	{Name: "dominant13", Intervals: iv(0, 2, 4, 5, 7, 9, 10), Essential: iv(4, 9, 10), Optional: iv(0, 2, 5, 7), Kind: Extended, Base: "13"},
	{Name: "13_no5_no11", Intervals: iv(0, 2, 4, 9, 10), Essential: iv(4, 9, 10), Optional: iv(0, 2), Kind: Extended, Base: "13"},
	{Name: "13_shell", Intervals: iv(0, 4, 9, 10), Essential: iv(4, 9, 10), Optional: iv(0), Kind: Extended, Base: "13"},
	{Name: "major7_sharp11", Intervals: iv(0, 4, 6, 7, 11), Essential: iv(4, 6, 11), Optional: iv(0, 7), Kind: Extended, Base: "Δ7", Alterations: alt("#11"), ExactBonus: 60},
	{Name: "major7_sharp11_no5", Intervals: iv(0, 4, 6, 11), Essential: iv(4, 6, 11), Optional: iv(0), Kind: Extended, Base: "Δ7", Alterations: alt("#11"), ExactBonus: 60},
	{Name: "major7_sharp11_shell", Intervals: iv(0, 6, 11), Essential: iv(6, 11), Optional: iv(0), Kind: Extended, Base: "Δ7", Alterations: alt("#11"), ThirdOptional: true, ExactBonus: 60},
	{Name: "major9_sharp11", Intervals: iv(0, 2, 4, 6, 7, 11), Essential: iv(2, 4, 6, 11), Optional: iv(0, 7), Kind: Extended, Base: "Δ9", Alterations: alt("#11"), ExactBonus: 60},

	// altered dominants
	{Name: "7_flat9", Intervals: iv(0, 1, 4, 7, 10), Essential: iv(1, 4, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("b9")},
	{Name: "7_flat9_no5", Intervals: iv(0, 1, 4, 10), Essential: iv(1, 4, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("b9")},
	{Name: "7_sharp9", Intervals: iv(0, 3, 4, 7, 10), Essential: iv(3, 4, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("#9")},
	{Name: "7_sharp11", Intervals: iv(0, 4, 6, 7, 10), Essential: iv(4, 6, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("#11")},
	{Name: "7_sharp11_no5", Intervals: iv(0, 4, 6, 10), Essential: iv(4, 6, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("#11")},
	{Name: "7_flat13", Intervals: iv(0, 4, 7, 8, 10), Essential: iv(4, 8, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("b13")},
	{Name: "7_flat13_no5", Intervals: iv(0, 4, 8, 10), Essential: iv(4, 8, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("b13"), ExactBonus: 40},
	{Name: "7_flat9_flat13", Intervals: iv(0, 1, 4, 7, 8, 10), Essential: iv(1, 4, 8, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("b9", "b13")},
	{Name: "7_flat9_flat13_no5", Intervals: iv(0, 1, 4, 8, 10), Essential: iv(1, 4, 8, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("b9", "b13"), ExactBonus: 50},
	{Name: "7_sharp9_flat13", Intervals: iv(0, 3, 4, 7, 8, 10), Essential: iv(3, 4, 8, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("#9", "b13")},
	{Name: "7_sharp9_flat13_no5", Intervals: iv(0, 3, 4, 8, 10), Essential: iv(3, 4, 8, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("#9", "b13"), ExactBonus: 50},
	{Name: "7_flat9_sharp11", Intervals: iv(0, 1, 4, 6, 7, 10), Essential: iv(1, 4, 6, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("b9", "#11")},
	{Name: "7_flat9_sharp11_no5", Intervals: iv(0, 1, 4, 6, 10), Essential: iv(1, 4, 6, 10), Optional: iv(0), Kind: AlteredDominant, Base: "7", Alterations: alt("b9", "#11"), ExactBonus: 80},
	{Name: "7_sharp9_sharp11", Intervals: iv(0, 3, 4, 6, 7, 10), Essential: iv(3, 4, 6, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("#9", "#11")},
	{Name: "7_flat9_sharp9", Intervals: iv(0, 1, 3, 4, 7, 10), Essential: iv(1, 3, 4, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "7", Alterations: alt("b9", "#9"), ExactBonus: 60},
	{Name: "9_flat13", Intervals: iv(0, 2, 4, 7, 8, 10), Essential: iv(2, 4, 8, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "9", Alterations: alt("b13")},
	{Name: "13_flat9", Intervals: iv(0, 1, 4, 7, 9, 10), Essential: iv(1, 4, 9, 10), Optional: iv(0, 7), Kind: AlteredDominant, Base: "13", Alterations: alt("b9"), ExactBonus: 80},
	{Name: "13_flat9_no5", Intervals: iv(0, 1, 4, 9, 10), Essential: iv(1, 4, 9, 10), Optional: iv(0), Kind: AlteredDominant, Base: "13", Alterations: alt("b9"), ExactBonus: 80},
	{Name: "13_sharp11_no5", Intervals: iv(0, 2, 4, 6, 9, 10), Essential: iv(4, 6, 9, 10), Optional: iv(0, 2), Kind: AlteredDominant, Base: "13", Alterations: alt("#11")},
	{Name: "13_sharp11_no3", Intervals: iv(0, 2, 6, 7, 9, 10), Essential: iv(2, 6, 10), Optional: iv(0, 7, 9), Kind: AlteredDominant, Base: "13", Alterations: alt("#11"), ThirdOptional: true, ExactBonus: 60},

	// suspended sevenths and extensions
	{Name: "7sus4", Intervals: iv(0, 5, 7, 10), Essential: iv(5, 10), Optional: iv(0, 7), Kind: Sus, Base: "7sus4", AllowNatural4: true},
	{Name: "7sus2", Intervals: iv(0, 2, 7, 10), Essential: iv(2, 10), Optional: iv(0, 7), Kind: Sus, Base: "7sus2"},
	{Name: "9sus", Intervals: iv(0, 2, 5, 7, 10), Essential: iv(2, 5, 10), Optional: iv(0, 7), Kind: Sus, Base: "9(sus)", AllowNatural4: true},
	{Name: "9sus_no5", Intervals: iv(0, 2, 5, 10), Essential: iv(2, 5, 10), Optional: iv(0), Kind: Sus, Base: "9(sus)", AllowNatural4: true},
	{Name: "13sus", Intervals: iv(0, 2, 5, 7, 9, 10), Essential: iv(2, 9, 10), Optional: iv(0, 5, 7), Kind: Sus, Base: "13(sus)", AllowNatural4: true},
	{Name: "13sus_no5", Intervals: iv(0, 2, 5, 9, 10), Essential: iv(2, 9, 10), Optional: iv(0, 5), Kind: Sus, Base: "13(sus)", AllowNatural4: true},
}

func alt(vals ...string) []string { return vals }
