package main

import "github.com/hnormak/spotify-cli/internal/commands"

func main() {
	commands.Execute()
}
