package gltest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var consolePassColor = color.New(color.FgGreen)              //nolint:gochecknoglobals
var consoleFailColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleWarnColor = color.New(color.FgYellow)             //nolint:gochecknoglobals
var consoleMutedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals

// TestLogger receives status information about the run as it progresses. It
// is the console-facing counterpart of the LogWriter: discarding everything
// it receives (quiet mode) must not change the log file in any way.
type TestLogger interface {
	CaseStarted(path string)
	CaseFinished(path string, result Result)
	CaseListed(path string)
	RunFinished(summary Summary)
}

type nullTestLogger struct{}

// NullTestLogger returns a TestLogger that ignores everything.
func NullTestLogger() TestLogger { return nullTestLogger{} }

func (n nullTestLogger) CaseStarted(string)          {}
func (n nullTestLogger) CaseFinished(string, Result) {}
func (n nullTestLogger) CaseListed(string)           {}
func (n nullTestLogger) RunFinished(Summary)         {}

// ConsoleTestLogger echoes run progress to a writer, normally os.Stdout.
// Quiet mode swaps the writer for io.Discard before the run starts.
type ConsoleTestLogger struct {
	Out io.Writer
	// DetailOnFailure includes the record detail text for failed cases.
	DetailOnFailure bool
}

func (c ConsoleTestLogger) CaseStarted(path string) {
	fmt.Fprintf(c.Out, "[%s]\n", path)
}

func (c ConsoleTestLogger) CaseFinished(path string, result Result) {
	switch {
	case result.Outcome == Pass:
		_, _ = consolePassColor.Fprintf(c.Out, "  %s\n", result.Outcome)
	case result.Outcome.IsFailure():
		_, _ = consoleFailColor.Fprintf(c.Out, "  %s: %s\n", result.Outcome, path)
		if c.DetailOnFailure && result.Detail != "" {
			_, _ = consoleMutedColor.Fprintf(c.Out, "    %s\n", result.Detail)
		}
	default:
		_, _ = consoleWarnColor.Fprintf(c.Out, "  %s\n", result.Outcome)
	}
}

func (c ConsoleTestLogger) CaseListed(path string) {
	fmt.Fprintln(c.Out, path)
}

func (c ConsoleTestLogger) RunFinished(summary Summary) {
	fmt.Fprintln(c.Out)
	if summary.Listed > 0 {
		fmt.Fprintf(c.Out, "Listed %d cases\n", summary.Listed)
		return
	}
	fmt.Fprintf(c.Out, "Executed %d cases\n", summary.Executed)
	if summary.FailureCount() == 0 {
		_, _ = consolePassColor.Fprintln(c.Out, "All executed cases passed")
		return
	}
	_, _ = consoleFailColor.Fprintf(c.Out, "FAILED CASES (%d):\n", summary.FailureCount())
	for _, outcome := range []Outcome{Fail, ResourceError, InternalError} {
		if n := summary.Counts[outcome]; n > 0 {
			_, _ = consoleFailColor.Fprintf(c.Out, "  %s: %d\n", outcome, n)
		}
	}
}
