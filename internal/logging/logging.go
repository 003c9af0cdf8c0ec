// Package logging builds the structured logger shared by scafsln commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "scafsln"

// Options configures New.
type Options struct {
	// Verbose enables debug output.
	Verbose bool
	// Output defaults to stderr.
	Output io.Writer
}

// New returns a logger writing to stderr at Info level, or Debug when
// verbose.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
