/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
)

const GOFMHURL_VERSION = "0.1.0"

const defaultDedupeCacheSize = 4096

// CliOptions represents command-line options
type CliOptions struct {
	// Input options
	URL      string
	URLsFile string

	// Mode
	Revert             bool
	DefaultPorts       goflags.StringSlice
	ParsedDefaultPorts map[string]int

	// Output options
	OutputFile      string
	Dedupe          bool
	DedupeCacheSize int
	Silent          bool
	Verbose         bool
	Debug           bool

	// Enable profiler
	Profile bool
}

// setDefaults sets default values for options
func (o *CliOptions) setDefaults() {
	if o.DedupeCacheSize <= 0 {
		o.DedupeCacheSize = defaultDedupeCacheSize
	}

	// -silent wins over the chatty modes
	if o.Silent {
		o.Verbose = false
		o.Debug = false
	}
}

// validate performs all validation checks
func (o *CliOptions) validate() error {
	if err := o.validateInputs(); err != nil {
		return err
	}

	if err := o.processDefaultPorts(); err != nil {
		return err
	}

	if err := o.setupOutputDir(); err != nil {
		return err
	}

	return nil
}

// validateInputs checks URL and file inputs. With neither set the runner reads stdin.
func (o *CliOptions) validateInputs() error {
	if o.URLsFile == "" {
		return nil
	}

	fi, err := os.Stat(o.URLsFile)
	if err != nil {
		return fmt.Errorf("cannot read inputs file (-l): %v", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("inputs file (-l) is a directory: %s", o.URLsFile)
	}

	return nil
}

// processDefaultPorts turns "scheme:port" entries into ParsedDefaultPorts
func (o *CliOptions) processDefaultPorts() error {
	if len(o.DefaultPorts) == 0 {
		return nil
	}

	ports := make(map[string]int, len(o.DefaultPorts))
	for _, entry := range o.DefaultPorts {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		scheme, portStr, ok := strings.Cut(entry, ":")
		if !ok {
			return fmt.Errorf("invalid default port %q: expected scheme:port", entry)
		}

		scheme = strings.ToLower(strings.TrimSpace(scheme))
		if scheme == "" {
			return fmt.Errorf("invalid default port %q: empty scheme", entry)
		}
		// file URLs never carry a port
		if scheme == "file" {
			return fmt.Errorf("invalid default port %q: file has no default port", entry)
		}

		port, err := strconv.Atoi(strings.TrimSpace(portStr))
		if err != nil || port < 0 || port > 65535 {
			return fmt.Errorf("invalid default port %q: port must be 0-65535", entry)
		}

		ports[scheme] = port
	}

	o.ParsedDefaultPorts = ports
	return nil
}

// setupOutputDir creates the directory holding the output file
func (o *CliOptions) setupOutputDir() error {
	if o.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(o.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}
	return nil
}
