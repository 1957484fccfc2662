package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"chordid/constants"
	"chordid/model"
	"chordid/pitch"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Labels what you play on a midi input",
	Long:  `Labels what you play on the first midi input port, as you play it.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("no midi input port found")
		return
	}

	eng := newEngine()
	var mu sync.Mutex
	onNotes := make(map[uint8]bool)
	lastLabel := ""

	// a played chord arrives as a burst of note-ons, let it settle
	settle := debounce.New(constants.DebounceMs * time.Millisecond)
	emit := func() {
		mu.Lock()
		var notes model.Notes
		for note := range onNotes {
			notes = append(notes, note)
		}
		mu.Unlock()

		notes = pitch.Playable(notes)
		if len(notes) == 0 {
			return
		}
		if res, ok := eng.Identify(notes); ok && res.Label != lastLabel {
			lastLabel = res.Label
			fmt.Println(res.Label)
		}
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			settle(emit)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			settle(emit)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
