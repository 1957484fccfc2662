package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/spf13/cobra"

	"chordid/constants"
	"chordid/model"
	"chordid/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregates analysis output",
	Long:  `Aggregates label frequencies across all analysis binaries in the output dir.`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

const topLabels = 25

type analysisReport struct {
	numFiles    int64
	numChanges  []int64
	numMatched  int64
	labelCounts map[string]int64
}

func gatherAnalyses() analysisReport {
	report := analysisReport{labelCounts: make(map[string]int64)}

	files, err := os.ReadDir(constants.GetOutDir())
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r, _ := regexp.Compile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")
	for _, file := range files {
		filename := file.Name()
		if !r.MatchString(filename) {
			continue
		}
		report.numFiles += 1
		path := filepath.Join(constants.GetOutDir(), filename)
		analysis := util.ReadBinaryOrPanic[model.FileAnalysis](path)
		report.numChanges = append(report.numChanges, int64(len(analysis.Labels)))
		for _, l := range analysis.Labels {
			if l.Matched {
				report.numMatched += 1
				report.labelCounts[l.Label] += 1
			}
		}
	}

	return report
}

func report() {
	rep := gatherAnalyses()
	numChanges := util.Sum(rep.numChanges)

	fmt.Printf("files analyzed: %v\n", rep.numFiles)
	fmt.Printf("note-set changes: %v\n", numChanges)
	fmt.Printf("changes labeled: %v\n", rep.numMatched)
	if numChanges > 0 {
		fmt.Printf("label rate: %.1f%%\n", 100*float64(rep.numMatched)/float64(numChanges))
	}

	labels := util.GetKeys(rep.labelCounts)
	sort.Slice(labels, func(i, j int) bool {
		if rep.labelCounts[labels[i]] != rep.labelCounts[labels[j]] {
			return rep.labelCounts[labels[i]] > rep.labelCounts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > topLabels {
		labels = labels[:topLabels]
	}
	for _, label := range labels {
		fmt.Printf("%8d  %v\n", rep.labelCounts[label], label)
	}
}
