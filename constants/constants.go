package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

const ServeAddr = ":8080"

// how long to let a flurry of note on/offs settle before labeling
const DebounceMs = 35
