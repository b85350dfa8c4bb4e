package main

import (
	"os"

	"github.com/islandu/pcset/internal/cli"
)

// Version information
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], Version, Commit, BuildDate))
}
