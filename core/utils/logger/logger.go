/*
GoFMHURL
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

type Logger struct {
	mu      sync.Mutex
	verbose bool
	debug   bool

	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	error   pterm.PrefixPrinter
	trace   pterm.PrefixPrinter
}

var DefaultLogger *Logger

func init() {
	// pterm hides Debug printers unless this is set, we gate on our own flag instead
	pterm.EnableDebugMessages()

	DefaultLogger = NewLogger(os.Stdout)
}

// NewLogger returns a logger writing every level to w.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{}
	l.setWriter(w)
	return l
}

func (l *Logger) setWriter(w io.Writer) {
	safeWriter := NewSafeWriter(w)

	l.info = *pterm.Info.WithWriter(safeWriter)
	l.success = *pterm.Success.WithWriter(safeWriter)
	l.warning = *pterm.Warning.WithWriter(safeWriter)
	l.error = *pterm.Error.WithWriter(safeWriter)
	l.trace = *pterm.Debug.WithWriter(safeWriter)
	l.trace.Prefix = pterm.Prefix{
		Text:  " TRACE ",
		Style: pterm.NewStyle(pterm.BgGray, pterm.FgWhite),
	}
}

// SetOutput redirects all levels to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setWriter(w)
}

type field struct {
	key   string
	value string
}

type Event struct {
	logger    *Logger
	printer   pterm.PrefixPrinter
	component string
	fields    []field
}

type SafeWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

func (sw *SafeWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if bytes.HasSuffix(p, []byte("\n")) {
		return sw.w.Write(p)
	}

	line := make([]byte, 0, len(p)+1)
	line = append(line, p...)
	line = append(line, '\n')
	if _, err := sw.w.Write(line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newEvent copies the printer under the lock since SetOutput swaps printers. A false gate
// yields a nil event.
func (l *Logger) newEvent(pick func(*Logger) (pterm.PrefixPrinter, bool)) *Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	printer, ok := pick(l)
	if !ok {
		return nil
	}
	return &Event{
		logger:  l,
		printer: printer,
	}
}

func (l *Logger) Info() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.info, true })
}

func (l *Logger) Success() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.success, true })
}

func (l *Logger) Warning() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.warning, true })
}

func (l *Logger) Error() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.error, true })
}

// Debug returns nil unless debug output is enabled, so call sites can chain freely.
func (l *Logger) Debug() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.trace, l.debug })
}

func (l *Logger) Verbose() *Event {
	return l.newEvent(func(l *Logger) (pterm.PrefixPrinter, bool) { return l.info, l.verbose })
}

// Core logging methods on the default logger
func Info() *Event {
	return DefaultLogger.Info()
}

func Success() *Event {
	return DefaultLogger.Success()
}

func Error() *Event {
	return DefaultLogger.Error()
}

func Warning() *Event {
	return DefaultLogger.Warning()
}

func Debug() *Event {
	return DefaultLogger.Debug()
}

func Verbose() *Event {
	return DefaultLogger.Verbose()
}

func (e *Event) Msgf(format string, args ...any) {
	if e == nil {
		return
	}

	e.logger.mu.Lock()
	defer e.logger.mu.Unlock()

	var meta string
	for _, f := range e.fields {
		meta += " " + pterm.Bold.Sprint(f.key) + "=" + f.value
	}

	var componentStr string
	if e.component != "" {
		componentStr = pterm.FgCyan.Sprintf("[%s] ", e.component)
	}

	// URLs carry percent-escapes, so metadata must never reach the format string
	e.printer.Println(componentStr + fmt.Sprintf(format, args...) + meta)
}

func (e *Event) Component(name string) *Event {
	if e == nil {
		return nil
	}
	e.component = name
	return e
}

// Metadata appends a key=value pair; pairs render in the order they were added.
func (e *Event) Metadata(key, value string) *Event {
	if e == nil {
		return nil
	}
	e.fields = append(e.fields, field{key: key, value: value})
	return e
}

// Logger control methods
func (l *Logger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
}

func (l *Logger) DisableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = false
}

func (l *Logger) EnableVerbose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = true
}

func (l *Logger) DisableVerbose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = false
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) IsVerboseEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func IsDebugEnabled() bool {
	return DefaultLogger.IsDebugEnabled()
}

func IsVerboseEnabled() bool {
	return DefaultLogger.IsVerboseEnabled()
}

func PrintGreenLn(format string, args ...any) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()
	pterm.FgGreen.Printfln(format, args...)
}

func PrintYellowLn(format string, args ...any) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()
	pterm.FgYellow.Printfln(format, args...)
}

// PrintSummary prints the end-of-run banner with the mode, processed and failed counts.
func PrintSummary(mode string, processed, failed int) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()

	modeText := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack).Sprintf(" %s ", mode)
	okText := pterm.NewStyle(pterm.BgGreen, pterm.FgBlack).Sprintf(" %d OK ", processed-failed)

	message := modeText + " " + okText
	if failed > 0 {
		message += " " + pterm.NewStyle(pterm.BgRed, pterm.FgBlack).Sprintf(" %d FAILED ", failed)
	}

	pterm.Fprintln(os.Stderr, message)
}
