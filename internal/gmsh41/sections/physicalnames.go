package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// PhysicalNames parses $PhysicalNames: a numNames header followed by
// exactly that many "dimension physical_tag \"name\"" records.
func PhysicalNames(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $PhysicalNames header", rangeAt(sc), sc.Origin())
	}
	headerFields := header.Fields()
	if len(headerFields) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numNames\"", header.Range, sc.Origin())
	}
	numNames, err := sc.ParseInt(headerFields[0])
	if err != nil {
		return err
	}

	count := 0
	for count < numNames {
		line, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading $PhysicalNames records", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 2 {
			return diag.New(diag.InvalidFormat, "expected \"dimension physical_tag \\\"name\\\"\"", line.Range, sc.Origin())
		}
		dim, err := sc.ParseInt(fields[0])
		if err != nil {
			return err
		}
		if dim < 0 || dim > 3 {
			return diag.New(diag.InvalidEntityDimension, "physical name dimension must be in {0,1,2,3}", fields[0].Range, sc.Origin())
		}
		tag, err := sc.ParseInt(fields[1])
		if err != nil {
			return err
		}

		nameStart := fields[1].Range.End - line.Range.Begin
		rest := lexer.Line{
			Text:  line.Text[nameStart:],
			Range: source.Range{Begin: line.Range.Begin + nameStart, End: line.Range.End},
		}
		name, nameRange, _, err := rest.QuotedString()
		if err != nil {
			return err
		}
		_ = nameRange

		b.AddPhysicalName(builder.PhysicalName{Dimension: dim, Tag: int32(tag), Name: name})
		count++
	}

	if count != numNames {
		return diag.New(diag.InvalidData, "numNames header disagrees with the number of records produced", headerFields[0].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("PhysicalNames"); err != nil {
		return err
	}
	return nil
}
