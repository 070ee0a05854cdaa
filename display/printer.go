// Package display prints the statistics of a session for a human reader
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	separatorWidth = 40
	noDataMessage  = "No data for the selected filters."
)

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(out io.Writer, errOut io.Writer, useColors bool) *Printer {
	return &Printer{
		out:       out,
		err:       errOut,
		useColors: useColors,
	}
}

// ResolveColors disables colors when NO_COLOR is set or the terminal is dumb
func ResolveColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Prompt prints a question and leaves the cursor on the same line
func (p *Printer) Prompt(question string) {
	fmt.Fprint(p.out, question)
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Warning prints a message that the user must fix, like an invalid answer
func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[WARN] "+format+"\n", args...)
	}
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.err, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
	}
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n\n", title)
	} else {
		fmt.Fprintf(p.out, "\n%s\n\n", title)
	}
}

func (p *Printer) Separator() {
	fmt.Fprintln(p.out, strings.Repeat("-", separatorWidth))
}

// Elapsed prints how long a computation took and closes the section
func (p *Printer) Elapsed(elapsed time.Duration) {
	fmt.Fprintf(p.out, "\nThis took %s seconds.\n", formatSeconds(elapsed))
	p.Separator()
}

// Value prints a label with its value
func (p *Printer) Value(label string, value interface{}) {
	fmt.Fprintf(p.out, "%s %v\n", label, p.Bold(fmt.Sprint(value)))
}

// NoData prints the explicit marker used when a view has nothing to show
func (p *Printer) NoData(label string) {
	fmt.Fprintf(p.out, "%s %s\n", label, p.Dim(noDataMessage))
}

// Unavailable prints the marker used when the source has no column for a value
func (p *Printer) Unavailable(what string) {
	fmt.Fprintf(p.out, "%s\n", p.Dim(fmt.Sprintf("No %s info available.", what)))
}

// Bold returns text in bold
func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

func formatSeconds(elapsed time.Duration) string {
	return fmt.Sprintf("%.6f", elapsed.Seconds())
}
