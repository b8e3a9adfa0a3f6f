// Package diag collects assembler errors and warnings.
package diag

import (
	"iter"
	"strings"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

// DEFAULT_LIMIT is the default error ceiling.
const DEFAULT_LIMIT = 200

// Severity of a diagnostic message.
type Severity int

//go:generate go tool stringer -linecomment -type=Severity
const (
	SEVERITY_ERROR   = Severity(0) // error
	SEVERITY_WARNING = Severity(1) // warning
)

// Message is a single diagnostic.
type Message struct {
	Severity Severity
	File     string
	Line     int
	Column   int
	Err      error
}

func (msg Message) Error() string {
	switch {
	case msg.Line > 0 && msg.Column > 0:
		return f("%v line %d column %d: %v: %v", msg.File, msg.Line, msg.Column, msg.Severity, msg.Err)
	case msg.Line > 0:
		return f("%v line %d: %v: %v", msg.File, msg.Line, msg.Severity, msg.Err)
	}
	return f("%v: %v: %v", msg.File, msg.Severity, msg.Err)
}

func (msg Message) Unwrap() error {
	return msg.Err
}

// List is an append-only sink of diagnostics, bounded by an error ceiling.
type List struct {
	Limit             int  // Error ceiling; zero or negative for no limit.
	WarningsAreErrors bool // If set, warnings are recorded as errors.
	Messages          []Message

	errors   int
	warnings int
}

// NewList creates an empty diagnostics list.
func NewList(limit int, warningsAreErrors bool) *List {
	return &List{
		Limit:             limit,
		WarningsAreErrors: warningsAreErrors,
	}
}

// Add records a message. Once the error ceiling has been exceeded, further
// messages are dropped.
func (dl *List) Add(msg Message) {
	if dl.ErrorLimitExceeded() {
		return
	}

	if msg.Severity == SEVERITY_WARNING && dl.WarningsAreErrors {
		msg.Severity = SEVERITY_ERROR
	}

	switch msg.Severity {
	case SEVERITY_ERROR:
		dl.errors++
	case SEVERITY_WARNING:
		dl.warnings++
	}

	dl.Messages = append(dl.Messages, msg)
}

// AddError records an error at a source location.
func (dl *List) AddError(file string, line, column int, err error) {
	dl.Add(Message{Severity: SEVERITY_ERROR, File: file, Line: line, Column: column, Err: err})
}

// AddWarning records a warning at a source location.
func (dl *List) AddWarning(file string, line, column int, err error) {
	dl.Add(Message{Severity: SEVERITY_WARNING, File: file, Line: line, Column: column, Err: err})
}

// ErrorLimitExceeded is true once more errors than the ceiling were recorded.
func (dl *List) ErrorLimitExceeded() bool {
	return dl.Limit > 0 && dl.errors > dl.Limit
}

// ErrorsOccurred is true if any error was recorded.
func (dl *List) ErrorsOccurred() bool {
	return dl.errors > 0
}

// WarningsOccurred is true if any warning was recorded.
func (dl *List) WarningsOccurred() bool {
	return dl.warnings > 0
}

// ErrorCount is the number of recorded errors.
func (dl *List) ErrorCount() int {
	return dl.errors
}

// Reset clears all messages and counters.
func (dl *List) Reset() {
	dl.Messages = nil
	dl.errors = 0
	dl.warnings = 0
}

// Select iterates over the messages of one severity.
func (dl *List) Select(severity Severity) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, msg := range dl.Messages {
			if msg.Severity == severity && !yield(msg) {
				return
			}
		}
	}
}

// Error reports every message, one per line.
func (dl *List) Error() string {
	lines := make([]string, 0, len(dl.Messages))
	for _, msg := range dl.Messages {
		lines = append(lines, msg.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the error messages to errors.Is and errors.As.
func (dl *List) Unwrap() (errs []error) {
	for msg := range dl.Select(SEVERITY_ERROR) {
		errs = append(errs, msg)
	}
	return
}
