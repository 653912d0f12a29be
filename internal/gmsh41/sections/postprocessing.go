package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// NodeData parses $NodeData.
func NodeData(sc *lexer.Scanner, b *builder.Builder) error {
	v, err := readPostProcessingView(sc, "NodeData", false)
	if err != nil {
		return err
	}
	b.AddNodeData(v)
	return nil
}

// ElementData parses $ElementData.
func ElementData(sc *lexer.Scanner, b *builder.Builder) error {
	v, err := readPostProcessingView(sc, "ElementData", false)
	if err != nil {
		return err
	}
	b.AddElementData(v)
	return nil
}

// ElementNodeData parses $ElementNodeData.
func ElementNodeData(sc *lexer.Scanner, b *builder.Builder) error {
	v, err := readPostProcessingView(sc, "ElementNodeData", true)
	if err != nil {
		return err
	}
	b.AddElementNodeData(v)
	return nil
}

// readPostProcessingView reads the common $NodeData/$ElementData/
// $ElementNodeData body: a count-prefixed string-tag block, a
// count-prefixed real-tag block, a count-prefixed integer-tag block
// (whose third entry gives the entity count that follows), then that
// many entity records. It stores the view faithfully without
// interpreting the tag semantics, per spec §4.10.
func readPostProcessingView(sc *lexer.Scanner, name string, perNodeCount bool) (builder.PostProcessingView, error) {
	strTags, err := readStringTagBlock(sc)
	if err != nil {
		return builder.PostProcessingView{}, err
	}
	realTags, err := readFloatTagBlock(sc)
	if err != nil {
		return builder.PostProcessingView{}, err
	}
	intTags, err := readIntTagBlock(sc)
	if err != nil {
		return builder.PostProcessingView{}, err
	}
	if len(intTags) < 3 {
		return builder.PostProcessingView{}, diag.New(diag.InvalidFormat, "$"+name+" integer-tag block must supply at least timeStep, numFieldComponents, numEntities", rangeAt(sc), sc.Origin())
	}
	numComponents := int(intTags[1])
	numEntities := int(intTags[2])

	entries := make([]builder.PostProcessingEntry, numEntities)
	for i := 0; i < numEntities; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return builder.PostProcessingView{}, diag.New(diag.InvalidFormat, "unexpected end of file reading $"+name+" entity record", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 1 {
			return builder.PostProcessingView{}, diag.New(diag.InvalidFormat, "expected an entity tag", line.Range, sc.Origin())
		}
		entityTag, err := sc.ParseUint(fields[0])
		if err != nil {
			return builder.PostProcessingView{}, err
		}
		pos := 1
		numNodesPerElement := 0
		if perNodeCount {
			if len(fields) < 2 {
				return builder.PostProcessingView{}, diag.New(diag.InvalidFormat, "expected numNodesPerElement", line.Range, sc.Origin())
			}
			n, err := sc.ParseInt(fields[1])
			if err != nil {
				return builder.PostProcessingView{}, err
			}
			numNodesPerElement = n
			pos = 2
		}
		valueCount := numComponents
		if perNodeCount {
			valueCount = numComponents * numNodesPerElement
		}
		if len(fields) < pos+valueCount {
			return builder.PostProcessingView{}, diag.New(diag.InvalidData, "numFieldComponents disagrees with the number of values present on the line", line.Range, sc.Origin())
		}
		values := make([]float64, valueCount)
		for k := 0; k < valueCount; k++ {
			values[k], err = sc.ParseFloat(fields[pos+k])
			if err != nil {
				return builder.PostProcessingView{}, err
			}
		}
		entries[i] = builder.PostProcessingEntry{EntityTag: entityTag, NumNodesPerElement: numNodesPerElement, Values: values}
	}

	if _, err := sc.ExpectSectionFooter(name); err != nil {
		return builder.PostProcessingView{}, err
	}

	return builder.PostProcessingView{
		StringTags:  strTags,
		RealTags:    realTags,
		IntegerTags: intTags,
		Entries:     entries,
	}, nil
}

func readStringTagBlock(sc *lexer.Scanner) ([]string, error) {
	header, ok := sc.NextLine()
	if !ok {
		return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading string-tag count", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 1 {
		return nil, diag.New(diag.InvalidFormat, "expected a string-tag count", header.Range, sc.Origin())
	}
	count, err := sc.ParseInt(hf[0])
	if err != nil {
		return nil, err
	}
	tags := make([]string, count)
	for i := 0; i < count; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading a string tag", rangeAt(sc), sc.Origin())
		}
		value, _, _, err := line.QuotedString()
		if err != nil {
			return nil, err
		}
		tags[i] = value
	}
	return tags, nil
}

func readFloatTagBlock(sc *lexer.Scanner) ([]float64, error) {
	header, ok := sc.NextLine()
	if !ok {
		return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading real-tag count", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 1 {
		return nil, diag.New(diag.InvalidFormat, "expected a real-tag count", header.Range, sc.Origin())
	}
	count, err := sc.ParseInt(hf[0])
	if err != nil {
		return nil, err
	}
	tags := make([]float64, count)
	for i := 0; i < count; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading a real tag", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 1 {
			return nil, diag.New(diag.InvalidFormat, "expected a floating-point real tag", line.Range, sc.Origin())
		}
		tags[i], err = sc.ParseFloat(fields[0])
		if err != nil {
			return nil, err
		}
	}
	return tags, nil
}

func readIntTagBlock(sc *lexer.Scanner) ([]int64, error) {
	header, ok := sc.NextLine()
	if !ok {
		return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading integer-tag count", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 1 {
		return nil, diag.New(diag.InvalidFormat, "expected an integer-tag count", header.Range, sc.Origin())
	}
	count, err := sc.ParseInt(hf[0])
	if err != nil {
		return nil, err
	}
	tags := make([]int64, count)
	for i := 0; i < count; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return nil, diag.New(diag.InvalidFormat, "unexpected end of file reading an integer tag", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 1 {
			return nil, diag.New(diag.InvalidFormat, "expected an integer tag", line.Range, sc.Origin())
		}
		tags[i], err = sc.ParseInt64(fields[0])
		if err != nil {
			return nil, err
		}
	}
	return tags, nil
}
