/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/gcache"
	"github.com/slicingmelon/gofmhurl/core/fmhurl"
	"github.com/slicingmelon/gofmhurl/core/urlparser"
	"github.com/slicingmelon/gofmhurl/core/utils/helpers"
	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
)

type Runner struct {
	RunnerOptions *CliOptions
	Converter     *fmhurl.Converter

	// remembers recent inputs when -dedupe is set
	seen gcache.Cache[string, struct{}]

	stdin  io.Reader
	stdout io.Writer

	// opens -o, os.Create when nil
	createOutput func(name string) (io.WriteCloser, error)
}

func NewRunner() *Runner {
	return &Runner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (r *Runner) Initialize() error {
	opts, err := parseFlags()
	if err != nil {
		return err
	}
	return r.Configure(opts)
}

// Configure wires the runner for already validated options.
func (r *Runner) Configure(opts *CliOptions) error {
	r.RunnerOptions = opts

	// stdout belongs to the results
	if opts.Silent {
		GFMLogger.DefaultLogger.SetOutput(io.Discard)
	} else {
		GFMLogger.DefaultLogger.SetOutput(os.Stderr)
	}

	if opts.Verbose {
		GFMLogger.DefaultLogger.EnableVerbose()
	}
	if opts.Debug {
		GFMLogger.DefaultLogger.EnableDebug()
	}

	parser := urlparser.NewWHATWGParser(urlparser.WithDefaultPorts(opts.ParsedDefaultPorts))
	r.Converter = fmhurl.New(parser)

	for scheme, port := range opts.ParsedDefaultPorts {
		GFMLogger.Verbose().Component("runner").Msgf("default port for %s is %d", scheme, port)
	}

	if opts.Dedupe {
		r.seen = gcache.New[string, struct{}](opts.DedupeCacheSize).ARC().Build()
	}

	return nil
}

func (r *Runner) Run() error {
	inputs, err := r.collectInputs()
	if err != nil {
		return err
	}

	out := r.stdout
	var file io.WriteCloser
	if r.RunnerOptions.OutputFile != "" {
		file, err = r.openOutput(r.RunnerOptions.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %v", err)
		}
		defer func() {
			if file != nil {
				file.Close()
			}
		}()
		out = file
	}

	w := bufio.NewWriter(out)
	processed, failed := 0, 0

	for _, input := range inputs {
		if r.isDuplicate(input) {
			GFMLogger.Verbose().Component("runner").Msgf("skipping duplicate %s", helpers.SanitizeForTerminal(input))
			continue
		}

		processed++
		result, err := r.transform(input)
		if err != nil {
			failed++
			GFMLogger.Error().Msgf("%s", helpers.SanitizeForTerminal(err.Error()))
			continue
		}

		if _, err := fmt.Fprintln(w, result); err != nil {
			return fmt.Errorf("failed to write result: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %v", err)
	}
	if file != nil {
		err := file.Close()
		file = nil
		if err != nil {
			return fmt.Errorf("failed to write results: %v", err)
		}
	}

	if !r.RunnerOptions.Silent {
		GFMLogger.PrintSummary(r.mode(), processed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, processed)
	}
	return nil
}

func (r *Runner) openOutput(name string) (io.WriteCloser, error) {
	if r.createOutput != nil {
		return r.createOutput(name)
	}
	return os.Create(name)
}

func (r *Runner) mode() string {
	if r.RunnerOptions.Revert {
		return "revert"
	}
	return "convert"
}

// transform converts a URL to its FMH-URL, or reverts an FMH-URL with -revert
func (r *Runner) transform(input string) (string, error) {
	if r.RunnerOptions.Revert {
		return r.Converter.RevertString(input)
	}

	if !hasScheme(input) {
		shown := helpers.SanitizeForTerminal(input)
		GFMLogger.Warning().Msgf("%s has no scheme (did you mean https://%s ?)", shown, shown)
	}
	logRawComponents(input)

	return r.Converter.ConvertString(input)
}

func (r *Runner) isDuplicate(input string) bool {
	if r.seen == nil {
		return false
	}
	if _, err := r.seen.GetIFPresent(input); err == nil {
		return true
	}
	_ = r.seen.Set(input, struct{}{})
	return false
}
