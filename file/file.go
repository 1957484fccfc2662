package file

import (
	"chordid/model"
)

// CreateFileNumMap assigns each midi path a stable numeric id for compact
// references in analysis output.
func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
