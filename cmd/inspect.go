package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chordid/model"
	"chordid/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects an analysis binary",
	Long:  `Inspects an analysis binary`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	analysis := util.ReadBinaryOrPanic[model.FileAnalysis](path)
	fmt.Printf("path: %v\n", analysis.Path)
	if md := analysis.Metadata; md != nil {
		fmt.Printf("metadata: %v - %v (%v, %v)\n", md.Artist, md.Title, md.Release, md.Year)
	}
	for _, l := range analysis.Labels {
		label := l.Label
		if !l.Matched {
			label = "-"
		}
		fmt.Printf("%8dms  %v\n", l.OffsetMs, label)
	}
}
