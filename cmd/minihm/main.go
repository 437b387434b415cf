package main

import "minihm/cmd/minihm/commands"

func main() {
	commands.Execute()
}
