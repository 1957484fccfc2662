package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chordid/model"
	"chordid/pitch"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify C4 E4 G4 ...",
	Short: "Labels one set of notes",
	Long:  `Labels one set of notes, given as note names (C4, Bb3) or midi numbers.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var notes model.Notes
		for _, arg := range args {
			n, err := pitch.ParseNote(arg)
			cobra.CheckErr(err)
			notes = append(notes, n)
		}
		if res, ok := newEngine().Identify(notes); ok {
			fmt.Println(res.Label)
		} else {
			fmt.Println("no match")
		}
	},
}
