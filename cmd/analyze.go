package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"chordid/constants"
	"chordid/db"
	"chordid/engine"
	"chordid/file"
	"chordid/midi"
	"chordid/model"
	"chordid/pitch"
	"chordid/util"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [maxNum]",
	Short: "Labels every note-set change in the media dir",
	Long:  `Labels every note-set change in every midi file under MEDIA_PATH, writing one analysis binary per file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		runAnalyze(maxNum)
	},
}

func runAnalyze(maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	metadatas := fetchMetadatas(paths)
	eng := newEngine()

	for i, path := range paths {
		fmt.Printf("Analyzing %v/%v: %v\n", i+1, len(paths), path)
		analysis := analyzeFile(eng, path)
		if analysis == nil {
			continue
		}
		if md, ok := metadatas[filepath.Base(path)]; ok {
			analysis.Metadata = &md
		}
		outPath := filepath.Join(constants.GetOutDir(), uuid.NewString()+".dat")
		util.CreateBinary(outPath, *analysis)
	}

	util.CreateBinary(filepath.Join(constants.GetOutDir(), "fileNumMap.dat"), fileNumMap)
}

func analyzeFile(eng *engine.Engine, path string) *model.FileAnalysis {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Skipping %v: %v\n", path, err)
		return nil
	}

	analysis := model.FileAnalysis{Path: path}
	for _, change := range midi.NoteSetChanges(midi.ReduceEvents(s)) {
		labeled := model.LabeledChange{OffsetMs: change.OffsetMs}
		if notes := pitch.Playable(change.Notes); len(notes) > 0 {
			if res, ok := eng.Identify(notes); ok {
				labeled.Label = res.Label
				labeled.Matched = true
			}
		}
		analysis.Labels = append(analysis.Labels, labeled)
	}
	return &analysis
}

// fetchMetadatas batches filename lookups when a metadata table is
// configured. Without METADATA_TABLE set the map just stays empty.
func fetchMetadatas(paths []string) map[string]model.MidiMetadata {
	res := make(map[string]model.MidiMetadata)
	table := constants.GetMetadataTable()
	if table == "" {
		return res
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	for i := 0; i < len(names); i += db.MaxBatchSize {
		end := i + db.MaxBatchSize
		if end > len(names) {
			end = len(names)
		}
		for k, v := range db.GetMidiMetadatas(table, names[i:end]) {
			res[k] = v
		}
	}
	return res
}
