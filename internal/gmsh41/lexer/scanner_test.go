package lexer

import (
	"testing"

	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

func newTestScanner(content string) *Scanner {
	return New(source.NewBuffer([]byte(content), "test.msh"))
}

func TestExpectSectionHeaderAndFooter(t *testing.T) {
	s := newTestScanner("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n")
	if _, err := s.ExpectSectionHeader("MeshFormat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, ok := s.NextLine()
	if !ok || line.Text != "4.1 0 8" {
		t.Fatalf("expected body line, got %q ok=%v", line.Text, ok)
	}
	if _, err := s.ExpectSectionFooter("MeshFormat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpectSectionHeaderMismatch(t *testing.T) {
	s := newTestScanner("$Nodes\n")
	if _, err := s.ExpectSectionHeader("MeshFormat"); err == nil {
		t.Fatalf("expected error for mismatched header")
	}
}

func TestFieldsComputeByteRanges(t *testing.T) {
	s := newTestScanner("4.1 0 8\n")
	line, _ := s.NextLine()
	fields := line.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Value != "4.1" || fields[1].Value != "0" || fields[2].Value != "8" {
		t.Fatalf("unexpected field values: %+v", fields)
	}
	if fields[1].Range.Begin != 4 {
		t.Fatalf("expected second field to start at byte 4, got %d", fields[1].Range.Begin)
	}
}

func TestQuotedStringExtractsContent(t *testing.T) {
	s := newTestScanner(`3 15 "TheBox"` + "\n")
	line, _ := s.NextLine()
	fields := line.Fields()
	_ = fields
	// Reconstruct the remainder after "3 15 " for quoted-string extraction,
	// mirroring how the PhysicalNames section parser consumes a record.
	remIdx := len("3 15 ")
	rem := Line{Text: line.Text[remIdx:], Range: source.Range{Begin: line.Range.Begin + remIdx, End: line.Range.End}}
	value, _, rest, err := rem.QuotedString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "TheBox" {
		t.Fatalf("expected TheBox, got %q", value)
	}
	if rest != "" {
		t.Fatalf("expected empty remainder, got %q", rest)
	}
}

func TestQuotedStringUnterminated(t *testing.T) {
	rem := Line{Text: `"oops`, Range: source.Range{Begin: 0, End: 5}}
	if _, _, _, err := rem.QuotedString(); err == nil {
		t.Fatalf("expected error for unterminated quoted string")
	}
}

func TestSkipUnknownSection(t *testing.T) {
	s := newTestScanner("garbage line 1\ngarbage line 2\n$EndMyCustom\n$Nodes\n")
	if _, err := s.SkipUnknownSection("MyCustom"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, ok := s.NextLine()
	if !ok || line.Text != "$Nodes" {
		t.Fatalf("expected to land on $Nodes after skip, got %q", line.Text)
	}
}

func TestParseIntAndFloat(t *testing.T) {
	s := newTestScanner("42 3.14\n")
	line, _ := s.NextLine()
	fields := line.Fields()
	i, err := s.ParseInt(fields[0])
	if err != nil || i != 42 {
		t.Fatalf("expected 42, got %d err=%v", i, err)
	}
	f, err := s.ParseFloat(fields[1])
	if err != nil || f != 3.14 {
		t.Fatalf("expected 3.14, got %f err=%v", f, err)
	}
}

func TestParseIntInvalid(t *testing.T) {
	s := newTestScanner("notanumber\n")
	line, _ := s.NextLine()
	fields := line.Fields()
	if _, err := s.ParseInt(fields[0]); err == nil {
		t.Fatalf("expected error parsing non-numeric field")
	}
}
