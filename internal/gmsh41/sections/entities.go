package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// Entities parses $Entities: a header of four counts, then exactly that
// many point, curve, surface, and volume records in that order.
func Entities(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $Entities header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 4 {
		return diag.New(diag.InvalidFormat, "expected \"numPoints numCurves numSurfaces numVolumes\"", header.Range, sc.Origin())
	}
	numPoints, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}
	numCurves, err := sc.ParseInt(hf[1])
	if err != nil {
		return err
	}
	numSurfaces, err := sc.ParseInt(hf[2])
	if err != nil {
		return err
	}
	numVolumes, err := sc.ParseInt(hf[3])
	if err != nil {
		return err
	}

	result := &builder.Entities{
		Points:   make(map[int]*builder.PointEntity),
		Curves:   make(map[int]*builder.BoundedEntity),
		Surfaces: make(map[int]*builder.BoundedEntity),
		Volumes:  make(map[int]*builder.BoundedEntity),
	}
	dimTagRanges := make(map[[2]int]source.Range)

	for i := 0; i < numPoints; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading point entity", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 4 {
			return diag.New(diag.InvalidFormat, "expected \"tag x y z numPhysicalTags physicalTag...\"", line.Range, sc.Origin())
		}
		tag, err := sc.ParseInt(fields[0])
		if err != nil {
			return err
		}
		x, err := sc.ParseFloat(fields[1])
		if err != nil {
			return err
		}
		y, err := sc.ParseFloat(fields[2])
		if err != nil {
			return err
		}
		z, err := sc.ParseFloat(fields[3])
		if err != nil {
			return err
		}
		physTags, _, err := readTaggedList(sc, fields, 4)
		if err != nil {
			return err
		}
		result.Points[tag] = &builder.PointEntity{Tag: tag, X: x, Y: y, Z: z, PhysicalTags: toInt32Slice(physTags)}
		dimTagRanges[[2]int{0, tag}] = line.Range
	}

	if err := readBoundedEntities(sc, numCurves, 1, result.Curves, dimTagRanges); err != nil {
		return err
	}
	if err := readBoundedEntities(sc, numSurfaces, 2, result.Surfaces, dimTagRanges); err != nil {
		return err
	}
	if err := readBoundedEntities(sc, numVolumes, 3, result.Volumes, dimTagRanges); err != nil {
		return err
	}

	if len(result.Points) != numPoints {
		return diag.New(diag.InvalidData, "numPoints header disagrees with the number of point records produced", hf[0].Range, sc.Origin())
	}
	if len(result.Curves) != numCurves {
		return diag.New(diag.InvalidData, "numCurves header disagrees with the number of curve records produced", hf[1].Range, sc.Origin())
	}
	if len(result.Surfaces) != numSurfaces {
		return diag.New(diag.InvalidData, "numSurfaces header disagrees with the number of surface records produced", hf[2].Range, sc.Origin())
	}
	if len(result.Volumes) != numVolumes {
		return diag.New(diag.InvalidData, "numVolumes header disagrees with the number of volume records produced", hf[3].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("Entities"); err != nil {
		return err
	}

	if err := b.SetEntities(result, dimTagRanges); err != nil {
		return err
	}
	return nil
}

// readBoundedEntities reads count curve/surface/volume records of the
// given dimension into dest.
func readBoundedEntities(sc *lexer.Scanner, count, dim int, dest map[int]*builder.BoundedEntity, dimTagRanges map[[2]int]source.Range) error {
	for i := 0; i < count; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading entity record", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 8 {
			return diag.New(diag.InvalidFormat, "expected \"tag minX minY minZ maxX maxY maxZ numPhysicalTags ...\"", line.Range, sc.Origin())
		}
		tag, err := sc.ParseInt(fields[0])
		if err != nil {
			return err
		}
		bbox := make([]float64, 6)
		for k := 0; k < 6; k++ {
			bbox[k], err = sc.ParseFloat(fields[1+k])
			if err != nil {
				return err
			}
		}
		physTags, next, err := readTaggedList(sc, fields, 7)
		if err != nil {
			return err
		}
		bounding, _, err := readTaggedList(sc, fields, next)
		if err != nil {
			return err
		}

		dest[tag] = &builder.BoundedEntity{
			Tag: tag,
			MinX: bbox[0], MinY: bbox[1], MinZ: bbox[2],
			MaxX: bbox[3], MaxY: bbox[4], MaxZ: bbox[5],
			PhysicalTags:     toInt32Slice(physTags),
			BoundingEntities: bounding,
		}
		dimTagRanges[[2]int{dim, tag}] = line.Range
	}
	return nil
}

// readTaggedList reads a "count value..." run starting at field index
// pos, returning the values and the field index just past the run.
func readTaggedList(sc *lexer.Scanner, fields []lexer.Field, pos int) ([]int, int, error) {
	if pos >= len(fields) {
		return nil, pos, nil
	}
	n, err := sc.ParseInt(fields[pos])
	if err != nil {
		return nil, pos, err
	}
	values := make([]int, 0, n)
	for i := 0; i < n; i++ {
		idx := pos + 1 + i
		if idx >= len(fields) {
			return nil, idx, diag.New(diag.InvalidFormat, "declared tag count exceeds the fields present on the line", fields[len(fields)-1].Range, sc.Origin())
		}
		v, err := sc.ParseInt(fields[idx])
		if err != nil {
			return nil, idx, err
		}
		values = append(values, v)
	}
	return values, pos + 1 + n, nil
}

// toInt32Slice converts a []int of physical tags to []int32, the type
// PhysicalTags is stored as.
func toInt32Slice(vals []int) []int32 {
	out := make([]int32, len(vals))
	for i, v := range vals {
		out[i] = int32(v)
	}
	return out
}
