package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// Nodes parses $Nodes: a header of four counts, then numEntityBlocks
// blocks each laid out in two phases (tags, then coordinates), per
// spec §4.7. An implementation must buffer one pass per block; here
// that means collecting the tag lines before reading the coordinate
// lines, then pairing them positionally.
func Nodes(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $Nodes header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 4 {
		return diag.New(diag.InvalidFormat, "expected \"numEntityBlocks numNodes minNodeTag maxNodeTag\"", header.Range, sc.Origin())
	}
	numEntityBlocks, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}
	numNodes, err := sc.ParseInt(hf[1])
	if err != nil {
		return err
	}
	minNodeTag, err := sc.ParseUint(hf[2])
	if err != nil {
		return err
	}
	maxNodeTag, err := sc.ParseUint(hf[3])
	if err != nil {
		return err
	}

	totalNodes := 0
	var observedMin, observedMax uint64
	haveExtrema := false

	for blockIdx := 0; blockIdx < numEntityBlocks; blockIdx++ {
		blockHeader, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file in node entity block header", rangeAt(sc), sc.Origin())
		}
		bf := blockHeader.Fields()
		if len(bf) < 4 {
			return diag.New(diag.InvalidFormat, "expected \"entityDim entityTag parametric numNodesInBlock\"", blockHeader.Range, sc.Origin())
		}
		entityDim, err := sc.ParseInt(bf[0])
		if err != nil {
			return err
		}
		if entityDim < 0 || entityDim > 3 {
			return diag.New(diag.InvalidEntityDimension, "entity dimension must be in {0,1,2,3}", bf[0].Range, sc.Origin())
		}
		entityTag, err := sc.ParseInt(bf[1])
		if err != nil {
			return err
		}
		parametricFlag, err := sc.ParseInt(bf[2])
		if err != nil {
			return err
		}
		numNodesInBlock, err := sc.ParseInt(bf[3])
		if err != nil {
			return err
		}
		parametric := parametricFlag != 0

		// Phase 1: node tags.
		tags := make([]uint64, numNodesInBlock)
		tagRanges := make([]source.Range, numNodesInBlock)
		for i := 0; i < numNodesInBlock; i++ {
			line, ok := sc.NextLine()
			if !ok {
				return diag.New(diag.InvalidFormat, "unexpected end of file reading node tags", rangeAt(sc), sc.Origin())
			}
			fields := line.Fields()
			if len(fields) < 1 {
				return diag.New(diag.InvalidFormat, "expected a node tag", line.Range, sc.Origin())
			}
			tag, err := sc.ParseUint(fields[0])
			if err != nil {
				return err
			}
			tags[i] = tag
			tagRanges[i] = fields[0].Range
		}

		// Phase 2: coordinates, paired positionally with the tags above.
		nodes := make([]builder.Node, numNodesInBlock)
		for i := 0; i < numNodesInBlock; i++ {
			line, ok := sc.NextLine()
			if !ok {
				return diag.New(diag.InvalidFormat, "unexpected end of file reading node coordinates", rangeAt(sc), sc.Origin())
			}
			fields := line.Fields()
			if len(fields) < 3 {
				return diag.New(diag.InvalidFormat, "expected \"x y z\"", line.Range, sc.Origin())
			}
			x, err := sc.ParseFloat(fields[0])
			if err != nil {
				return err
			}
			y, err := sc.ParseFloat(fields[1])
			if err != nil {
				return err
			}
			z, err := sc.ParseFloat(fields[2])
			if err != nil {
				return err
			}

			var paramCoords []float64
			if parametric && entityDim > 0 {
				if len(fields) < 3+entityDim {
					return diag.New(diag.InvalidFormat, "parametric node missing parametric coordinates for its entity dimension", line.Range, sc.Origin())
				}
				paramCoords = make([]float64, entityDim)
				for k := 0; k < entityDim; k++ {
					paramCoords[k], err = sc.ParseFloat(fields[3+k])
					if err != nil {
						return err
					}
				}
			}

			tag := tags[i]
			if err := b.AddNodeTag(tag, tagRanges[i]); err != nil {
				return err
			}

			if !haveExtrema || tag < observedMin {
				observedMin = tag
			}
			if !haveExtrema || tag > observedMax {
				observedMax = tag
			}
			haveExtrema = true

			nodes[i] = builder.Node{Tag: tag, X: x, Y: y, Z: z, Parametric: paramCoords}
		}

		b.AddNodeBlock(builder.NodeBlock{EntityDim: entityDim, EntityTag: entityTag, Parametric: parametric, Nodes: nodes})
		totalNodes += numNodesInBlock
	}

	if totalNodes != numNodes {
		return diag.New(diag.InvalidData, "numNodes header disagrees with the number of node records produced", hf[1].Range, sc.Origin())
	}
	if haveExtrema && observedMin != minNodeTag {
		return diag.New(diag.InvalidData, "minNodeTag header disagrees with the observed minimum node tag", hf[2].Range, sc.Origin())
	}
	if haveExtrema && observedMax != maxNodeTag {
		return diag.New(diag.InvalidData, "maxNodeTag header disagrees with the observed maximum node tag", hf[3].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("Nodes"); err != nil {
		return err
	}
	return nil
}
