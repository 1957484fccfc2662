package cmd

import (
	"github.com/spf13/cobra"

	"chordid/engine"
)

var preferSharps bool

var rootCmd = &cobra.Command{
	Use:   "chordid",
	Short: "Names the chord or scale a set of notes spells",
	Long:  `Resolves sets of sounding midi notes to chord and scale labels, live or from files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&preferSharps, "sharps", false, "spell accidentals with sharps instead of flats")
}

func newEngine() *engine.Engine {
	return engine.New(engine.Options{PreferFlats: !preferSharps})
}
