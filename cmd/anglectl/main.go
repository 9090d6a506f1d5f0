// anglectl converts, normalizes and compares angles from the command line.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var (
	// Version is set via -ldflags.
	Version = "dev"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
