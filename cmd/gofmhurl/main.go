/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package main

import (
	"os"

	"github.com/slicingmelon/gofmhurl/core/cli"
	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
	"github.com/slicingmelon/gofmhurl/core/utils/profiler"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Initialize CLI runner which processes all flags (including the -profile flag)
	runner := cli.NewRunner()
	if err := runner.Initialize(); err != nil {
		GFMLogger.Error().Msgf("Initialization failed: %v", err)
		return 1
	}

	GFMLogger.Verbose().Msgf("GoFMHURL v%s", cli.GOFMHURL_VERSION)

	if runner.RunnerOptions.Profile {
		p := profiler.NewProfiler("")
		if err := p.Start(); err != nil {
			GFMLogger.Error().Msgf("Failed to start profiler: %v", err)
		} else {
			defer p.Stop()
		}
	}

	if err := runner.Run(); err != nil {
		GFMLogger.Error().Msgf("Execution failed: %v", err)
		return 1
	}
	return 0
}
