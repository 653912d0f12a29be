// Package source owns the raw bytes of a parsed MSH file and the
// byte-offset-to-line/column index used to render diagnostics.
package source

import (
	"fmt"
	"strings"
)

// Range is an inclusive-exclusive byte span [Begin, End) into a Buffer.
type Range struct {
	Begin int
	End   int
}

// Position is a 1-based line and column, matching editor conventions.
type Position struct {
	Line   int
	Column int
}

// Buffer holds the full contents of one MSH file (or in-memory input) and
// a precomputed line-start index.
type Buffer struct {
	Data       []byte
	Origin     string
	lineStarts []int
}

// NewBuffer computes the line-start index for data and returns a ready
// Buffer. Origin is a human-readable name for diagnostics (a file path,
// or the label a ParseBytes caller supplied), stored as given.
func NewBuffer(data []byte, origin string) *Buffer {
	starts := []int{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Buffer{Data: data, Origin: origin, lineStarts: starts}
}

// Position resolves a byte offset to a 1-based (line, column) pair. An
// offset past the end of the buffer resolves to the position just past
// the last byte.
func (b *Buffer) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.Data) {
		offset = len(b.Data)
	}

	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return Position{Line: lo + 1, Column: offset - b.lineStarts[lo] + 1}
}

// lineText returns the text of a 1-based line number, without its
// trailing newline.
func (b *Buffer) lineText(line int) string {
	if line < 1 || line > len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[line-1]
	end := len(b.Data)
	if line < len(b.lineStarts) {
		end = b.lineStarts[line] - 1
	}
	if end < start {
		end = start
	}
	return strings.TrimRight(string(b.Data[start:end]), "\r")
}

// Excerpt renders a caret-style excerpt of r with contextLines of
// leading context, in the manner of a compiler diagnostic.
func (b *Buffer) Excerpt(r Range, contextLines int) string {
	startPos := b.Position(r.Begin)
	endPos := b.Position(r.End)

	firstLine := startPos.Line - contextLines
	if firstLine < 1 {
		firstLine = 1
	}

	var sb strings.Builder
	for line := firstLine; line <= startPos.Line; line++ {
		fmt.Fprintf(&sb, "%4d | %s\n", line, b.lineText(line))
	}

	caretCol := startPos.Column
	caretLen := 1
	if endPos.Line == startPos.Line && endPos.Column > startPos.Column {
		caretLen = endPos.Column - startPos.Column
	}

	sb.WriteString("     | ")
	sb.WriteString(strings.Repeat(" ", caretCol-1))
	sb.WriteString(strings.Repeat("^", caretLen))
	sb.WriteString("\n")

	return sb.String()
}
