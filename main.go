package main

import "chordid/cmd"

func main() {
	cmd.Execute()
}
