// Package sections implements one parser per recognised MSH 4.1 section
// header. Each function receives the scanner positioned just after that
// section's header line and a builder to feed, and consumes exactly up
// to and including its $End... footer. Grounded on
// _examples/original_source/src/parser/*.rs for grammar fidelity and on
// DG3D/mesh/readers/gmsh_reader_4.go's read*4 functions for Go
// control-flow idiom (explicit loops over counts, early-return errors).
package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// MeshFormat parses the single-line $MeshFormat body: version file_type
// data_size.
func MeshFormat(sc *lexer.Scanner, b *builder.Builder) error {
	line, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $MeshFormat", rangeAt(sc), sc.Origin())
	}
	fields := line.Fields()
	if len(fields) < 3 {
		return diag.New(diag.InvalidFormat, "expected \"version file_type data_size\"", line.Range, sc.Origin())
	}

	version, err := sc.ParseFloat(fields[0])
	if err != nil {
		return err
	}
	fileType, err := sc.ParseInt(fields[1])
	if err != nil {
		return err
	}
	dataSize, err := sc.ParseInt(fields[2])
	if err != nil {
		return err
	}

	if version != 4.1 {
		return diag.New(diag.UnsupportedVersion, "unsupported MSH version, this parser only accepts 4.1", fields[0].Range, sc.Origin())
	}
	if fileType != 0 {
		return diag.New(diag.UnsupportedFileType, "unsupported file_type, only ASCII (0) is accepted", fields[1].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("MeshFormat"); err != nil {
		return err
	}

	b.SetFormat(builder.MeshFormat{Version: version, FileType: fileType, DataSize: dataSize})
	return nil
}

// rangeAt returns a zero-width range at the scanner's current cursor,
// used to anchor diagnostics triggered by unexpected end-of-file.
func rangeAt(sc *lexer.Scanner) source.Range {
	off := sc.Offset()
	return source.Range{Begin: off, End: off}
}
