package ui

import (
	"io"
)

// Severity classifies the visual weight of a piece of inline text, mirroring
// the output methods on UI. The print layer maps each value to the
// corresponding terminal style; data consumers (tests) see plain text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain — no colour emphasis
	SeveritySuccess                 // green  — known / positive
	SeverityWarn                    // yellow — uncertain / needs attention
	SeverityError                   // red    — unknown / negative
)

// StyledText pairs a plain string with a Severity annotation.
//
// Pass the value to [UI.Style] to obtain the appropriately coloured string
// for embedding in a format call:
//
//	u.Info("%s: %s", name, u.Style(addr))
type StyledText struct {
	Text     string
	Severity Severity
}

// UI provides all terminal output for celophane commands.
//
// It abstracts output and indentation so that:
//   - Production code uses TerminalUI (writes to os.Stdout)
//   - Tests use RecordingUI (captures all output)
//
// Indentation / nesting
//
// Use [UI.Indent] to get a child UI at one deeper indent level. The child
// shares the same underlying writer, so output ordering is preserved across
// scopes.
type UI interface {
	// Style returns the text from t coloured according to its Severity.
	// Use this to embed a styled value inside a larger Info/Warn/... line:
	//
	//	u.Info("Exchange: %s", u.Style(addr))
	//
	// When colours are disabled (e.g. piped output, RecordingUI) the plain
	// text is returned unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line (no prefix, no color).
	Info(format string, args ...any)

	// Success writes a positive outcome in green.
	Success(format string, args ...any)

	// Warn writes a non-fatal warning in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red.
	// This does NOT exit or return an error — callers decide what to do next.
	Error(format string, args ...any)

	// KeyValue renders an aligned 2-column block — label on the left,
	// value on the right — with all values left-aligned to the same column.
	// Use for compact metadata like chain id or block time.
	KeyValue(rows [][2]string)

	// Table renders a full bordered table with a header row followed by data
	// rows. Use when there are 3+ columns or the data is inherently tabular
	// (e.g. the registry contract list).
	Table(headers []string, rows [][]string)

	// Spinner starts an animated spinner with the given message and returns a
	// stop function. Call the stop function (or defer it) to clear the spinner
	// once the work is done:
	//
	//	stop := u.Spinner("Querying registry...")
	//	defer stop()
	//
	// In RecordingUI and non-terminal contexts the stop function is a no-op.
	Spinner(msg string) func()

	// Indent returns a child UI with indent level increased by one,
	// sharing the same underlying writer as the parent.
	Indent() UI

	// Writer returns an io.Writer that prepends the current indentation
	// to every line. Use this when calling functions that take io.Writer
	// directly.
	Writer() io.Writer
}
