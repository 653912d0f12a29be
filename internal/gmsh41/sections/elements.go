package sections

import (
	"fmt"

	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/elemtype"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// Elements parses $Elements: a header of four counts, then
// numEntityBlocks blocks, each a "entityDim entityTag elementType
// numElementsInBlock" header followed by that many element records.
// Fixed-arity element types read a constant node-tag count from the
// catalogue; variable-arity types (polygons, polyhedra, and the
// sub/mini entities) carry their own count as the record's second
// field, per spec §4.8.
func Elements(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $Elements header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 4 {
		return diag.New(diag.InvalidFormat, "expected \"numEntityBlocks numElements minElementTag maxElementTag\"", header.Range, sc.Origin())
	}
	numEntityBlocks, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}
	numElements, err := sc.ParseInt(hf[1])
	if err != nil {
		return err
	}
	minElementTag, err := sc.ParseUint(hf[2])
	if err != nil {
		return err
	}
	maxElementTag, err := sc.ParseUint(hf[3])
	if err != nil {
		return err
	}

	totalElements := 0
	var observedMin, observedMax uint64
	haveExtrema := false

	for blockIdx := 0; blockIdx < numEntityBlocks; blockIdx++ {
		blockHeader, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file in element entity block header", rangeAt(sc), sc.Origin())
		}
		bf := blockHeader.Fields()
		if len(bf) < 4 {
			return diag.New(diag.InvalidFormat, "expected \"entityDim entityTag elementType numElementsInBlock\"", blockHeader.Range, sc.Origin())
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
		elementType, err := sc.ParseInt(bf[2])
		if err != nil {
			return err
		}
		desc, ok := elemtype.Lookup(elementType)
		if !ok {
			return diag.New(diag.InvalidElementType, fmt.Sprintf("unknown element type %d", elementType), bf[2].Range, sc.Origin())
		}
		numElementsInBlock, err := sc.ParseInt(bf[3])
		if err != nil {
			return err
		}

		elements := make([]builder.Element, numElementsInBlock)
		for i := 0; i < numElementsInBlock; i++ {
			line, ok := sc.NextLine()
			if !ok {
				return diag.New(diag.InvalidFormat, "unexpected end of file reading element record", rangeAt(sc), sc.Origin())
			}
			fields := line.Fields()
			if len(fields) < 1 {
				return diag.New(diag.InvalidFormat, "expected an element tag", line.Range, sc.Origin())
			}
			tag, err := sc.ParseUint(fields[0])
			if err != nil {
				return err
			}

			var nodeFields []lexer.Field
			if desc.Variable {
				if len(fields) < 2 {
					return diag.New(diag.InvalidFormat, "variable-arity element missing its node count", line.Range, sc.Origin())
				}
				n, err := sc.ParseInt(fields[1])
				if err != nil {
					return err
				}
				if len(fields) < 2+n {
					return diag.New(diag.InvalidFormat, "variable-arity element declares more node tags than are present on the line", line.Range, sc.Origin())
				}
				nodeFields = fields[2 : 2+n]
			} else {
				arity := desc.NodeCount()
				if len(fields) < 1+arity {
					return diag.New(diag.InvalidFormat, fmt.Sprintf("element type %s requires %d node tags", desc.Name, arity), line.Range, sc.Origin())
				}
				nodeFields = fields[1 : 1+arity]
			}

			nodeTags := make([]uint64, len(nodeFields))
			for k, f := range nodeFields {
				nt, err := sc.ParseUint(f)
				if err != nil {
					return err
				}
				// $Elements may appear before $Nodes in the file (spec
				// places no order requirement on sections after
				// $MeshFormat), so a referenced tag can only be checked
				// for existence once the whole file has been scanned;
				// record it here and let Finish validate it.
				b.RecordElementNodeReference(nt, f.Range)
				nodeTags[k] = nt
			}

			if err := b.AddElementTag(tag, fields[0].Range); err != nil {
				return err
			}

			if !haveExtrema || tag < observedMin {
				observedMin = tag
			}
			if !haveExtrema || tag > observedMax {
				observedMax = tag
			}
			haveExtrema = true

			elements[i] = builder.Element{Tag: tag, NodeTags: nodeTags}
		}

		b.AddElementBlock(builder.ElementBlock{
			EntityDim:   entityDim,
			EntityTag:   entityTag,
			ElementType: elementType,
			Elements:    elements,
		})
		totalElements += numElementsInBlock
	}

	if totalElements != numElements {
		return diag.New(diag.InvalidData, "numElements header disagrees with the number of element records produced", hf[1].Range, sc.Origin())
	}
	if haveExtrema && observedMin != minElementTag {
		return diag.New(diag.InvalidData, "minElementTag header disagrees with the observed minimum element tag", hf[2].Range, sc.Origin())
	}
	if haveExtrema && observedMax != maxElementTag {
		return diag.New(diag.InvalidData, "maxElementTag header disagrees with the observed maximum element tag", hf[3].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("Elements"); err != nil {
		return err
	}
	return nil
}
