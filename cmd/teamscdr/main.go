package main

import (
	"os"

	"github.com/stratalabs/teamscdr-cli/internal/adapters/driving/cli"
	"github.com/stratalabs/teamscdr-cli/internal/graph"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	// Inject the live Graph client into CLI commands. The credential chain
	// (flags, config file, environment, interactive prompt) is the default.
	cli.SetServices(&cli.Services{
		Graph: graph.NewClient(),
	})

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
