package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/pushover-cli/internal/cli"
)

func main() {
	cmd := cli.NewApp().NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
