package models

// Track is the subset of a Spotify track payload the CLI renders.
type Track struct {
	Name       string
	Artist     string
	DurationMS int
	URI        string
}

// Artist is the subset of a Spotify artist payload the CLI renders.
type Artist struct {
	Name   string
	Genres []string
}
