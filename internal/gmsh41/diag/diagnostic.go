// Package diag implements the parser's error taxonomy: a discriminated
// Diagnostic value carrying a byte range into the originating source,
// grounded on this repository's error patterns and, for the
// wrap/context shape, on the DevCmdError style used elsewhere in the
// example pack.
package diag

import (
	"fmt"

	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// Kind discriminates the fixed error taxonomy a parse can fail with.
type Kind string

const (
	IoError                 Kind = "IoError"
	InvalidFormat           Kind = "InvalidFormat"
	UnsupportedVersion      Kind = "UnsupportedVersion"
	UnsupportedFileType     Kind = "UnsupportedFileType"
	InvalidSection          Kind = "InvalidSection"
	DuplicateSection        Kind = "DuplicateSection"
	MissingSection          Kind = "MissingSection"
	InvalidEntityDimension  Kind = "InvalidEntityDimension"
	InvalidElementType      Kind = "InvalidElementType"
	InvalidData             Kind = "InvalidData"
	DuplicateTag            Kind = "DuplicateTag"
)

// Diagnostic is the single error type returned by every parsing
// operation in this module. It always carries a Kind and a byte Range
// into Origin; Cause optionally wraps a lower-level error (e.g. a
// strconv.NumError or the *os.PathError from a failed read).
type Diagnostic struct {
	Kind    Kind
	Message string
	Range   source.Range
	Origin  string
	Cause   error

	// RunID correlates this diagnostic with others from the same
	// gmshinfo batch invocation. Empty outside of batch mode.
	RunID string
}

// New builds a Diagnostic with no wrapped cause.
func New(kind Kind, message string, r source.Range, origin string) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Range: r, Origin: origin}
}

// Wrap builds a Diagnostic around a lower-level cause.
func Wrap(kind Kind, message string, r source.Range, origin string, cause error) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Range: r, Origin: origin, Cause: cause}
}

func (d *Diagnostic) Error() string {
	prefix := ""
	if d.RunID != "" {
		prefix = "[" + d.RunID + "] "
	}
	if d.Cause != nil {
		return fmt.Sprintf("%s%s: %s: %s (%s:%d)", prefix, d.Kind, d.Message, d.Cause, d.Origin, d.Range.Begin)
	}
	return fmt.Sprintf("%s%s: %s (%s:%d)", prefix, d.Kind, d.Message, d.Origin, d.Range.Begin)
}

func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// Render produces a caret-style excerpt of the diagnostic's range using
// buf, followed by the prose message.
func (d *Diagnostic) Render(buf *source.Buffer) string {
	pos := buf.Position(d.Range.Begin)
	header := fmt.Sprintf("%s: %s\n  --> %s:%d:%d\n", d.Kind, d.Message, d.Origin, pos.Line, pos.Column)
	return header + buf.Excerpt(d.Range, 1)
}

// Warning is a non-fatal condition accumulated on a Mesh during parsing.
type Warning struct {
	Message string
	Range   source.Range
}
