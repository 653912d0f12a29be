package readers

import (
	"fmt"

	gmsh41 "github.com/gmsh41/meshparser"
	"github.com/gmsh41/meshparser/DG3D/mesh"
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
)

// gmshTypeToElementType maps the catalogue's low-order, fixed-arity
// element type identifiers onto the DG3D solver's ElementType enum. Only
// the shapes the solver pipeline actually assembles stiffness/mass
// matrices for have a slot here; everything else in the 140-type
// catalogue parses successfully at the gmsh41 level but has no DG3D
// representation.
var gmshTypeToElementType = map[int]mesh.ElementType{
	1:  mesh.Line,
	2:  mesh.Triangle,
	3:  mesh.Quad,
	4:  mesh.Tet,
	5:  mesh.Hex,
	6:  mesh.Prism,
	7:  mesh.Pyramid,
	8:  mesh.Line3,
	9:  mesh.Triangle6,
	10: mesh.Quad9,
	11: mesh.Tet10,
	12: mesh.Hex27,
	13: mesh.Prism18,
	14: mesh.Pyramid14,
}

// ReadGmsh4 reads a Gmsh MSH file, format version 4.1, by delegating the
// full grammar to gmsh41.Parse and translating the resulting mesh into
// this package's DG3D mesh.Mesh connectivity representation.
//
// The translation only covers the fixed-arity, low-order element types
// the DG3D pipeline understands (see gmshTypeToElementType). Elements of
// other catalogue types are accepted by the underlying parse but are
// reported back to the caller as a translation warning rather than
// silently dropped; the returned Mesh still holds every element that
// could be translated.
func ReadGmsh4(filename string) (*mesh.Mesh, []string, error) {
	parsed, err := gmsh41.Parse(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return translate(parsed)
}

func translate(parsed *gmsh41.Mesh) (*mesh.Mesh, []string, error) {
	m := mesh.NewMesh()

	if parsed.Entities != nil {
		translateEntities(parsed.Entities, m)
	}

	for _, block := range parsed.NodeBlocks {
		for _, n := range block.Nodes {
			tag := int(n.Tag)
			if len(n.Parametric) > 0 {
				m.AddNodeWithParametric(tag, []float64{n.X, n.Y, n.Z}, n.Parametric)
			} else {
				m.AddNode(tag, []float64{n.X, n.Y, n.Z})
			}
		}
	}

	var warnings []string
	for _, w := range parsed.Warnings {
		warnings = append(warnings, w.Message)
	}

	for _, block := range parsed.ElementBlocks {
		et, ok := gmshTypeToElementType[block.ElementType]
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"entity(dim=%d,tag=%d): element type %d has no DG3D representation, %d element(s) skipped",
				block.EntityDim, block.EntityTag, block.ElementType, len(block.Elements)))
			continue
		}
		for _, e := range block.Elements {
			nodeTags := make([]int, len(e.NodeTags))
			for i, nt := range e.NodeTags {
				nodeTags[i] = int(nt)
			}
			if err := m.AddElement(int(e.Tag), et, []int{block.EntityTag}, nodeTags); err != nil {
				return nil, nil, fmt.Errorf("translating element %d: %w", e.Tag, err)
			}
		}
	}

	if parsed.Periodic != nil {
		m.Periodics = translatePeriodics(parsed.Periodic)
	}
	m.GhostElements = translateGhostElements(parsed.GhostElements)

	m.BuildConnectivity()

	return m, warnings, nil
}

func translateEntities(src *builder.Entities, m *mesh.Mesh) {
	for tag, p := range src.Points {
		m.Entities[tag] = &mesh.Entity{
			Dimension:    0,
			Tag:          tag,
			BoundingBox:  [2][3]float64{{p.X, p.Y, p.Z}, {p.X, p.Y, p.Z}},
			PhysicalTags: int32SliceToInt(p.PhysicalTags),
		}
	}
	addBounded := func(dim int, entities map[int]*builder.BoundedEntity) {
		for tag, e := range entities {
			m.Entities[tag] = &mesh.Entity{
				Dimension:        dim,
				Tag:              tag,
				BoundingBox:      [2][3]float64{{e.MinX, e.MinY, e.MinZ}, {e.MaxX, e.MaxY, e.MaxZ}},
				PhysicalTags:     int32SliceToInt(e.PhysicalTags),
				BoundingEntities: append([]int(nil), e.BoundingEntities...),
			}
		}
	}
	addBounded(1, src.Curves)
	addBounded(2, src.Surfaces)
	addBounded(3, src.Volumes)
}

func int32SliceToInt(in []int32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

func translatePeriodics(p *builder.PeriodicLinks) []mesh.Periodic {
	out := make([]mesh.Periodic, len(p.Links))
	for i, link := range p.Links {
		nodeMap := make(map[int]int, len(link.NodeCorrespondences))
		for _, pair := range link.NodeCorrespondences {
			nodeMap[int(pair[0])] = int(pair[1])
		}
		out[i] = mesh.Periodic{
			Dimension:       link.Dimension,
			SlaveTag:        link.SlaveTag,
			MasterTag:       link.MasterTag,
			AffineTransform: append([]float64(nil), link.AffineTransform...),
			NodeMap:         nodeMap,
		}
	}
	return out
}

func translateGhostElements(in []builder.GhostElement) []mesh.GhostElement {
	out := make([]mesh.GhostElement, len(in))
	for i, g := range in {
		out[i] = mesh.GhostElement{
			ElementTag:      int(g.ElementTag),
			OwnerPartition:  g.OwnerPartition,
			GhostPartitions: append([]int(nil), g.GhostPartitions...),
		}
	}
	return out
}
