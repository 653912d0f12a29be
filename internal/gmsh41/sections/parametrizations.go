package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// Parametrizations parses $Parametrizations: a "numCurveParam
// numSurfaceParam" header, then that many curve records ("tag
// numPoints" followed by numPoints coordinate lines) and surface
// records ("tag numPointsU numPointsV" followed by numPointsU*numPointsV
// coordinate lines).
func Parametrizations(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $Parametrizations header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 2 {
		return diag.New(diag.InvalidFormat, "expected \"numCurveParam numSurfaceParam\"", header.Range, sc.Origin())
	}
	numCurves, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}
	numSurfaces, err := sc.ParseInt(hf[1])
	if err != nil {
		return err
	}

	curves := make([]builder.ParametrizationCurve, 0, numCurves)
	for i := 0; i < numCurves; i++ {
		recHeader, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading curve parametrization header", rangeAt(sc), sc.Origin())
		}
		rf := recHeader.Fields()
		if len(rf) < 2 {
			return diag.New(diag.InvalidFormat, "expected \"tag numPoints\"", recHeader.Range, sc.Origin())
		}
		tag, err := sc.ParseInt(rf[0])
		if err != nil {
			return err
		}
		numPoints, err := sc.ParseInt(rf[1])
		if err != nil {
			return err
		}
		points := make([][]float64, numPoints)
		for p := 0; p < numPoints; p++ {
			points[p], err = readCoordLine(sc)
			if err != nil {
				return err
			}
		}
		curves = append(curves, builder.ParametrizationCurve{Tag: tag, Nodes: numPoints, Points: points})
	}

	surfaces := make([]builder.ParametrizationSurface, 0, numSurfaces)
	for i := 0; i < numSurfaces; i++ {
		recHeader, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading surface parametrization header", rangeAt(sc), sc.Origin())
		}
		rf := recHeader.Fields()
		if len(rf) < 3 {
			return diag.New(diag.InvalidFormat, "expected \"tag numPointsU numPointsV\"", recHeader.Range, sc.Origin())
		}
		tag, err := sc.ParseInt(rf[0])
		if err != nil {
			return err
		}
		numU, err := sc.ParseInt(rf[1])
		if err != nil {
			return err
		}
		numV, err := sc.ParseInt(rf[2])
		if err != nil {
			return err
		}
		total := numU * numV
		points := make([][]float64, total)
		for p := 0; p < total; p++ {
			points[p], err = readCoordLine(sc)
			if err != nil {
				return err
			}
		}
		surfaces = append(surfaces, builder.ParametrizationSurface{Tag: tag, NumPointsU: numU, NumPointsV: numV, Points: points})
	}

	if _, err := sc.ExpectSectionFooter("Parametrizations"); err != nil {
		return err
	}

	b.SetParametrizations(&builder.Parametrizations{Curves: curves, Surfaces: surfaces})
	return nil
}

func readCoordLine(sc *lexer.Scanner) ([]float64, error) {
	line, ok := sc.NextLine()
	if !ok {
		return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading parametrization point", rangeAt(sc), sc.Origin())
	}
	fields := line.Fields()
	if len(fields) < 3 {
		return nil, diag.New(diag.InvalidFormat, "expected \"x y z\"", line.Range, sc.Origin())
	}
	coords := make([]float64, 3)
	var err error
	for i := 0; i < 3; i++ {
		coords[i], err = sc.ParseFloat(fields[i])
		if err != nil {
			return nil, err
		}
	}
	return coords, nil
}
