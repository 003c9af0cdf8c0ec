// Package printer renders styled console output for scafsln commands.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Status symbols used as line prefixes.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolSkip    = "-"
)

// ruleWidth is the width of section rules.
const ruleWidth = 60

// SetNoColor switches lipgloss to the plain ASCII profile when disabled is
// true. It affects every style rendered afterwards.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Faint returns text with faint styling.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold returns text with bold styling.
func Bold(text string) string { return boldStyle.Render(text) }

// Success returns text in green.
func Success(text string) string { return successStyle.Render(text) }

// Error returns text in red.
func Error(text string) string { return errorStyle.Render(text) }

// Warning returns text in yellow.
func Warning(text string) string { return warningStyle.Render(text) }

// Info returns text in cyan.
func Info(text string) string { return infoStyle.Render(text) }

// Rule returns a faint horizontal separator.
func Rule() string {
	return Faint(strings.Repeat("-", ruleWidth))
}

// Printer writes status lines to a writer.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line writes text followed by a newline.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Linef formats and writes a line.
func (p *Printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Section writes a titled header with a rule below it.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "%s\n%s\n", Info(title), Rule())
}

// Successf writes a green check line.
func (p *Printer) Successf(format string, args ...any) {
	p.status(successStyle, SymbolSuccess, format, args...)
}

// Errorf writes a red cross line.
func (p *Printer) Errorf(format string, args ...any) {
	p.status(errorStyle, SymbolError, format, args...)
}

// Warningf writes a yellow warning line.
func (p *Printer) Warningf(format string, args ...any) {
	p.status(warningStyle, SymbolWarning, format, args...)
}

// Skippedf writes a faint line for work that was not needed.
func (p *Printer) Skippedf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", Faint(SymbolSkip), Faint(fmt.Sprintf(format, args...)))
}

func (p *Printer) status(style lipgloss.Style, symbol, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", style.Render(symbol), fmt.Sprintf(format, args...))
}
