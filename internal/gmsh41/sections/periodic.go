package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// Periodic parses $Periodic: a numPeriodicLinks header, then per link a
// "entityDim slaveTag masterTag" line, a "numAffine value..." line (the
// values may continue onto following lines), a
// "numCorrespondingNodes" line, and that many "slaveNodeTag
// masterNodeTag" lines. Preserved as structured records; only count
// consistency is checked, per spec §4.9.
func Periodic(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $Periodic header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numPeriodicLinks\"", header.Range, sc.Origin())
	}
	numLinks, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}

	links := make([]builder.PeriodicLink, 0, numLinks)
	for i := 0; i < numLinks; i++ {
		linkHeader, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file in periodic link header", rangeAt(sc), sc.Origin())
		}
		lf := linkHeader.Fields()
		if len(lf) < 3 {
			return diag.New(diag.InvalidFormat, "expected \"entityDim slaveTag masterTag\"", linkHeader.Range, sc.Origin())
		}
		dim, err := sc.ParseInt(lf[0])
		if err != nil {
			return err
		}
		if dim < 0 || dim > 3 {
			return diag.New(diag.InvalidEntityDimension, "periodic link dimension must be in {0,1,2,3}", lf[0].Range, sc.Origin())
		}
		slaveTag, err := sc.ParseInt(lf[1])
		if err != nil {
			return err
		}
		masterTag, err := sc.ParseInt(lf[2])
		if err != nil {
			return err
		}

		affineLine, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading affine transform", rangeAt(sc), sc.Origin())
		}
		af := affineLine.Fields()
		if len(af) < 1 {
			return diag.New(diag.InvalidFormat, "expected \"numAffine value...\"", affineLine.Range, sc.Origin())
		}
		numAffine, err := sc.ParseInt(af[0])
		if err != nil {
			return err
		}
		values := af[1:]
		for len(values) < numAffine {
			more, ok := sc.NextLine()
			if !ok {
				return diag.New(diag.InvalidData, "numAffine disagrees with the number of values present", affineLine.Range, sc.Origin())
			}
			values = append(values, more.Fields()...)
		}
		affine := make([]float64, numAffine)
		for k := 0; k < numAffine; k++ {
			affine[k], err = sc.ParseFloat(values[k])
			if err != nil {
				return err
			}
		}

		countLine, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading numCorrespondingNodes", rangeAt(sc), sc.Origin())
		}
		cf := countLine.Fields()
		if len(cf) < 1 {
			return diag.New(diag.InvalidFormat, "expected \"numCorrespondingNodes\"", countLine.Range, sc.Origin())
		}
		numNodes, err := sc.ParseInt(cf[0])
		if err != nil {
			return err
		}

		correspondences := make([][2]uint64, numNodes)
		for k := 0; k < numNodes; k++ {
			pairLine, ok := sc.NextLine()
			if !ok {
				return diag.New(diag.InvalidFormat, "unexpected end of file reading node correspondence", rangeAt(sc), sc.Origin())
			}
			pf := pairLine.Fields()
			if len(pf) < 2 {
				return diag.New(diag.InvalidFormat, "expected \"slaveNodeTag masterNodeTag\"", pairLine.Range, sc.Origin())
			}
			slaveNode, err := sc.ParseUint(pf[0])
			if err != nil {
				return err
			}
			masterNode, err := sc.ParseUint(pf[1])
			if err != nil {
				return err
			}
			correspondences[k] = [2]uint64{slaveNode, masterNode}
		}

		links = append(links, builder.PeriodicLink{
			Dimension:           dim,
			SlaveTag:            slaveTag,
			MasterTag:           masterTag,
			AffineTransform:     affine,
			NodeCorrespondences: correspondences,
		})
	}

	if len(links) != numLinks {
		return diag.New(diag.InvalidData, "numPeriodicLinks header disagrees with the number of link records produced", hf[0].Range, sc.Origin())
	}

	footerRange, err := sc.ExpectSectionFooter("Periodic")
	if err != nil {
		return err
	}
	b.SetPeriodic(&builder.PeriodicLinks{Links: links}, footerRange)
	return nil
}
