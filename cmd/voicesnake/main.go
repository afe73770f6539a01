package main

import (
	"github.com/battlesnakeio/voicesnake/cmd/voicesnake/commands"
)

func main() {
	commands.Execute()
}
