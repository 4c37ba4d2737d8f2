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
	"strings"

	"github.com/slicingmelon/go-rawurlparser"
	"github.com/slicingmelon/gofmhurl/core/utils/helpers"
	GFMLogger "github.com/slicingmelon/gofmhurl/core/utils/logger"
)

// collectInputs gathers inputs from -u, -l and, when neither is set, stdin
func (r *Runner) collectInputs() ([]string, error) {
	var inputs []string
	opts := r.RunnerOptions

	if opts.URL != "" {
		inputs = append(inputs, strings.TrimSpace(opts.URL))
	}

	if opts.URLsFile != "" {
		fileInputs, err := readInputsFromFile(opts.URLsFile)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, fileInputs...)
	}

	if opts.URL == "" && opts.URLsFile == "" {
		stdinInputs, err := readInputs(r.stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %v", err)
		}
		inputs = append(inputs, stdinInputs...)
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs to process")
	}

	return inputs, nil
}

// readInputsFromFile reads inputs from the specified file
func readInputsFromFile(inputsFile string) ([]string, error) {
	file, err := os.Open(inputsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open inputs file: %v", err)
	}
	defer file.Close()

	inputs, err := readInputs(file)
	if err != nil {
		return nil, fmt.Errorf("error reading inputs file: %v", err)
	}
	return inputs, nil
}

// readInputs returns one trimmed input per line, skipping blanks and # comments
func readInputs(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// hasScheme reports whether a convert-mode input looks like it starts with "scheme:".
// Inputs like "example.com/path" parse as nothing useful, so they get a clearer hint.
func hasScheme(input string) bool {
	i := strings.IndexByte(input, ':')
	if i <= 0 {
		return false
	}
	for j, c := range input[:i] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// logRawComponents shows the input as typed, before the WHATWG parser normalises it
func logRawComponents(input string) {
	if !GFMLogger.IsVerboseEnabled() {
		return
	}

	shown := helpers.SanitizeForTerminal(input)
	raw, err := rawurlparser.RawURLParse(input)
	if err != nil {
		GFMLogger.Verbose().Component("input").Msgf("raw parse of %s failed: %v", shown, err)
		return
	}

	GFMLogger.Verbose().
		Component("input").
		Metadata("scheme", raw.Scheme).
		Metadata("host", raw.Host).
		Metadata("path", raw.Path).
		Metadata("query", raw.Query).
		Msgf("raw %s", shown)
}
