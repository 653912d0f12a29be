package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// InterpolationScheme parses $InterpolationScheme: a quoted scheme
// name, a numElementTopologies count, then that many entries each
// pairing an element type identifier with a coefficient matrix and an
// exponent matrix (each "numRows numCols" followed by numRows lines of
// numCols floats).
func InterpolationScheme(sc *lexer.Scanner, b *builder.Builder) error {
	nameLine, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $InterpolationScheme name", rangeAt(sc), sc.Origin())
	}
	name, _, _, err := nameLine.QuotedString()
	if err != nil {
		return err
	}

	countLine, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file reading numElementTopologies", rangeAt(sc), sc.Origin())
	}
	cf := countLine.Fields()
	if len(cf) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numElementTopologies\"", countLine.Range, sc.Origin())
	}
	numEntries, err := sc.ParseInt(cf[0])
	if err != nil {
		return err
	}

	entries := make([]builder.InterpolationSchemeEntry, 0, numEntries)
	for i := 0; i < numEntries; i++ {
		typeLine, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading element type identifier", rangeAt(sc), sc.Origin())
		}
		tf := typeLine.Fields()
		if len(tf) < 1 {
			return diag.New(diag.InvalidFormat, "expected an element type identifier", typeLine.Range, sc.Origin())
		}
		elementType, err := sc.ParseInt(tf[0])
		if err != nil {
			return err
		}

		coefficients, err := readMatrix(sc)
		if err != nil {
			return err
		}
		exponents, err := readMatrix(sc)
		if err != nil {
			return err
		}

		entries = append(entries, builder.InterpolationSchemeEntry{
			ElementType:  elementType,
			Coefficients: coefficients,
			Exponents:    exponents,
		})
	}

	if _, err := sc.ExpectSectionFooter("InterpolationScheme"); err != nil {
		return err
	}

	b.AddInterpolationScheme(builder.InterpolationScheme{Name: name, Entries: entries})
	return nil
}

func readMatrix(sc *lexer.Scanner) ([][]float64, error) {
	header, ok := sc.NextLine()
	if !ok {
		return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading matrix dimensions", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 2 {
		return nil, diag.New(diag.InvalidFormat, "expected \"numRows numCols\"", header.Range, sc.Origin())
	}
	numRows, err := sc.ParseInt(hf[0])
	if err != nil {
		return nil, err
	}
	numCols, err := sc.ParseInt(hf[1])
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, numRows)
	for r := 0; r < numRows; r++ {
		line, ok := sc.NextLine()
		if !ok {
			return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading matrix row", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < numCols {
			return nil, diag.New(diag.InvalidData, "numCols disagrees with the number of values present on the row", line.Range, sc.Origin())
		}
		row := make([]float64, numCols)
		for c := 0; c < numCols; c++ {
			row[c], err = sc.ParseFloat(fields[c])
			if err != nil {
				return nil, err
			}
		}
		rows[r] = row
	}
	return rows, nil
}
