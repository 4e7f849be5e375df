// main is the entry point for the autoscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/apolabs/autoscope/cmd"
	"github.com/apolabs/autoscope/internal/contract"
	"github.com/apolabs/autoscope/internal/iostore"
)

func main() {
	// Wire the global persistence manager into the command layer.
	cmd.SetStoreManager(iostore.Manager)

	err := cmd.Execute()

	// Shut down stores and profiling before deciding the exit code so
	// buffered data always lands on disk.
	iostore.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("stopping profiling", perr)
	}

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
