package catalog

// Scale templates. These only apply to scalar runs and must explain the
// sounding pitch classes exactly, so essential/optional splits don't apply.
var scaleShapes = []Shape{
	{Name: "ionian", Intervals: iv(0, 2, 4, 5, 7, 9, 11), Kind: ScaleMode, ScaleName: "Ionian"},
	{Name: "dorian", Intervals: iv(0, 2, 3, 5, 7, 9, 10), Kind: ScaleMode, ScaleName: "Dorian"},
	{Name: "phrygian", Intervals: iv(0, 1, 3, 5, 7, 8, 10), Kind: ScaleMode, ScaleName: "Phrygian"},
	{Name: "lydian", Intervals: iv(0, 2, 4, 6, 7, 9, 11), Kind: ScaleMode, ScaleName: "Lydian"},
	{Name: "mixolydian", Intervals: iv(0, 2, 4, 5, 7, 9, 10), Kind: ScaleMode, ScaleName: "Mixolydian"},
	{Name: "aeolian", Intervals: iv(0, 2, 3, 5, 7, 8, 10), Kind: ScaleMode, ScaleName: "Aeolian"},
	{Name: "locrian", Intervals: iv(0, 1, 3, 5, 6, 8, 10), Kind: ScaleMode, ScaleName: "Locrian"},

	{Name: "melodic_minor", Intervals: iv(0, 2, 3, 5, 7, 9, 11), Kind: ScaleMode, ScaleName: "Melodic Minor"},
	{Name: "dorian_flat2", Intervals: iv(0, 1, 3, 5, 7, 9, 10), Kind: ScaleMode, ScaleName: "Dorian b2"},
	{Name: "lydian_augmented", Intervals: iv(0, 2, 4, 6, 8, 9, 11), Kind: ScaleMode, ScaleName: "Lydian Augmented"},
	{Name: "lydian_dominant", Intervals: iv(0, 2, 4, 6, 7, 9, 10), Kind: ScaleMode, ScaleName: "Lydian Dominant"},
	{Name: "mixolydian_flat6", Intervals: iv(0, 2, 4, 5, 7, 8, 10), Kind: ScaleMode, ScaleName: "Mixolydian b6"},
	{Name: "locrian_sharp2", Intervals: iv(0, 2, 3, 5, 6, 8, 10), Kind: ScaleMode, ScaleName: "Locrian #2"},
	{Name: "altered_scale", Intervals: iv(0, 1, 3, 4, 6, 8, 10), Kind: ScaleMode, ScaleName: "Altered"},

	{Name: "harmonic_minor", Intervals: iv(0, 2, 3, 5, 7, 8, 11), Kind: ScaleMode, ScaleName: "Harmonic Minor"},
	{Name: "locrian_sharp6", Intervals: iv(0, 1, 3, 5, 6, 9, 10), Kind: ScaleMode, ScaleName: "Locrian #6"},
	{Name: "ionian_sharp5", Intervals: iv(0, 2, 4, 5, 8, 9, 11), Kind: ScaleMode, ScaleName: "Ionian #5"},
	{Name: "dorian_sharp4", Intervals: iv(0, 2, 3, 6, 7, 9, 10), Kind: ScaleMode, ScaleName: "Dorian #4"},
	{Name: "phrygian_dominant", Intervals: iv(0, 1, 4, 5, 7, 8, 10), Kind: ScaleMode, ScaleName: "Phrygian Dominant"},
	{Name: "lydian_sharp2", Intervals: iv(0, 3, 4, 6, 7, 9, 11), Kind: ScaleMode, ScaleName: "Lydian #2"},
	{Name: "super_locrian_bb7", Intervals: iv(0, 1, 3, 4, 6, 8, 9), Kind: ScaleMode, ScaleName: "Super Locrian bb7"},

	{Name: "major_pentatonic", Intervals: iv(0, 2, 4, 7, 9), Kind: ScaleMode, ScaleName: "Major Pentatonic"},
	{Name: "minor_pentatonic", Intervals: iv(0, 3, 5, 7, 10), Kind: ScaleMode, ScaleName: "Minor Pentatonic"},
	{Name: "minor_blues", Intervals: iv(0, 3, 5, 6, 7, 10), Kind: ScaleMode, ScaleName: "Minor Blues"},
	{Name: "major_blues", Intervals: iv(0, 2, 3, 4, 7, 9), Kind: ScaleMode, ScaleName: "Major Blues"},

	{Name: "whole_tone", Intervals: iv(0, 2, 4, 6, 8, 10), Kind: SymmetricScale, ScaleName: "Whole Tone"},
	{Name: "diminished_wh", Intervals: iv(0, 2, 3, 5, 6, 8, 9, 11), Kind: SymmetricScale, ScaleName: "Diminished"},
	{Name: "diminished_hw", Intervals: iv(0, 1, 3, 4, 6, 7, 9, 10), Kind: SymmetricScale, ScaleName: "Dominant Diminished"},
}
