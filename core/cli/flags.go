/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"github.com/projectdiscovery/goflags"
)

func parseFlags() (*CliOptions, error) {
	opts := &CliOptions{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("GoFMHURL lays URLs out host-first (FMH-URL) and turns FMH-URLs back into URLs.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.URL, "url", "u", "", "URL (or FMH-URL with -revert) to transform"),
		flagSet.StringVarP(&opts.URLsFile, "list", "l", "", "File containing inputs, one per line (stdin is read when neither -u nor -l is set)"),
	)

	flagSet.CreateGroup("mode", "Mode",
		flagSet.BoolVarP(&opts.Revert, "revert", "r", false, "Treat inputs as FMH-URLs and print the reconstructed URLs"),
		flagSet.StringSliceVarP(&opts.DefaultPorts, "default-ports", "dp", nil, "Extra scheme default ports (example: -dp gopher:70,git:9418)", goflags.CommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.OutputFile, "output", "o", "", "File to write results to (default: stdout)"),
		flagSet.BoolVar(&opts.Dedupe, "dedupe", false, "Drop repeated inputs"),
		flagSet.IntVar(&opts.DedupeCacheSize, "dedupe-size", defaultDedupeCacheSize, "Number of recent inputs remembered by -dedupe"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "Print results only"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output"),
		flagSet.BoolVarP(&opts.Debug, "debug", "d", false, "Trace every conversion step"),
		flagSet.BoolVar(&opts.Profile, "profile", false, "Enable pprof profiler"),
	)

	if err := flagSet.Parse(); err != nil {
		return nil, err
	}

	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}
