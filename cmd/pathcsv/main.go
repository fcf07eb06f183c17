package main

import (
	"github.com/JanEricNitschke/PathToCsv/cmd/pathcsv/commands"
)

func main() {
	commands.Execute()
}
