package mesh

import (
	"testing"

	gmsh41 "github.com/gmsh41/meshparser"
)

// gmshElementType maps the handful of catalogue element type IDs the
// fixtures below use onto this package's ElementType enum, mirroring
// (in miniature) the table readers.ReadGmsh4 uses for the real bridge.
func gmshElementType(t int) (ElementType, bool) {
	switch t {
	case 4:
		return Tet, true
	case 5:
		return Hex, true
	case 6:
		return Prism, true
	case 7:
		return Pyramid, true
	}
	return 0, false
}

// buildMeshFromMSH parses content as an MSH 4.1 file through the
// package's own gmsh41 parser and wires the result into a *Mesh via
// AddNode/AddElement, the same way readers.ReadGmsh4 does for real
// input files.
func buildMeshFromMSH(t *testing.T, content string) *Mesh {
	t.Helper()
	parsed, err := gmsh41.ParseBytes([]byte(content), "<test>")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	m := NewMesh()
	for _, block := range parsed.NodeBlocks {
		for _, n := range block.Nodes {
			m.AddNode(int(n.Tag), []float64{n.X, n.Y, n.Z})
		}
	}
	for _, block := range parsed.ElementBlocks {
		et, ok := gmshElementType(block.ElementType)
		if !ok {
			t.Fatalf("unmapped element type %d in fixture", block.ElementType)
		}
		for _, e := range block.Elements {
			nodeTags := make([]int, len(e.NodeTags))
			for i, nt := range e.NodeTags {
				nodeTags[i] = int(nt)
			}
			if err := m.AddElement(int(e.Tag), et, []int{block.EntityTag}, nodeTags); err != nil {
				t.Fatalf("AddElement: %v", err)
			}
		}
	}
	m.BuildConnectivity()
	return m
}

const twoTetMeshMSH = `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$Nodes
1 5 1 5
3 1 0 5
1
2
3
4
5
0 0 0
1 0 0
0 1 0
0 0 1
1 1 1
$EndNodes
$Elements
1 2 1 2
3 1 4 2
1 1 2 3 4
2 2 3 4 5
$EndElements`

const mixedMeshMSH = `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$Nodes
1 16 1 16
3 1 0 16
1
2
3
4
5
6
7
8
9
10
11
12
13
14
15
16
0 0 0
1 0 0
1 1 0
0 1 0
0 0 1
1 0 1
1 1 1
0 1 1
0.5 0 0
0 0.5 0
0 0 0.5
0.5 0.5 0
0.5 0.5 1
0.5 0 0.5
0 0.5 0.5
0.5 0.5 0.5
$EndNodes
$Elements
4 5 1 5
3 1 4 2
1 1 2 4 5
2 2 3 4 16
3 1 5 1
3 1 2 3 4 5 6 7 8
3 1 6 1
4 1 2 4 5 6 8
3 1 7 1
5 1 2 3 4 16
$EndElements`

func TestNewMesh(t *testing.T) {
	m := NewMesh()
	if m.NumVertices != 0 || m.NumElements != 0 {
		t.Fatalf("expected empty mesh, got %d vertices, %d elements", m.NumVertices, m.NumElements)
	}
	if m.NodeIDMap == nil || m.ElementIDMap == nil || m.FaceMap == nil {
		t.Fatalf("expected maps to be initialized by NewMesh")
	}
}

func TestAddNodeAssignsDenseIndices(t *testing.T) {
	m := NewMesh()
	m.AddNode(10, []float64{0, 0, 0})
	m.AddNode(20, []float64{1, 0, 0})
	m.AddNode(30, []float64{0, 1, 0})

	if m.NumVertices != 3 {
		t.Fatalf("expected 3 vertices, got %d", m.NumVertices)
	}
	if idx := m.NodeIDMap[20]; idx != 1 {
		t.Fatalf("expected tag 20 to map to array index 1, got %d", idx)
	}
	if m.Vertices[m.NodeIDMap[30]][1] != 1 {
		t.Fatalf("expected node 30's y coordinate to be 1")
	}
}

func TestAddNodeWithParametric(t *testing.T) {
	m := NewMesh()
	m.AddNodeWithParametric(1, []float64{0, 0, 0}, []float64{0.5})

	param, ok := m.NodeParametric[1]
	if !ok {
		t.Fatalf("expected parametric coordinates recorded for node 1")
	}
	if len(param) != 1 || param[0] != 0.5 {
		t.Fatalf("expected parametric coords [0.5], got %v", param)
	}
}

func TestAddElementResolvesNodeTags(t *testing.T) {
	m := NewMesh()
	m.AddNode(1, []float64{0, 0, 0})
	m.AddNode(2, []float64{1, 0, 0})
	m.AddNode(3, []float64{0, 1, 0})
	m.AddNode(4, []float64{0, 0, 1})

	if err := m.AddElement(100, Tet, []int{1, 1}, []int{1, 2, 3, 4}); err != nil {
		t.Fatalf("unexpected error adding element: %v", err)
	}

	if m.NumElements != 1 {
		t.Fatalf("expected 1 element, got %d", m.NumElements)
	}
	idx := m.ElementIDMap[100]
	if got := m.EtoV[idx]; got[0] != 0 || got[3] != 3 {
		t.Fatalf("expected element 100's vertex indices to be [0 1 2 3], got %v", got)
	}
}

func TestAddElementUnknownNodeTagErrors(t *testing.T) {
	m := NewMesh()
	m.AddNode(1, []float64{0, 0, 0})

	err := m.AddElement(1, Line, nil, []int{1, 99})
	if err == nil {
		t.Fatalf("expected error referencing unknown node tag 99")
	}
}

func TestBuildConnectivityTwoTetsSharingFace(t *testing.T) {
	mesh := buildMeshFromMSH(t, twoTetMeshMSH)

	if mesh.NumElements != 2 {
		t.Fatalf("expected 2 elements, got %d", mesh.NumElements)
	}
	// Two tets sharing a face should have exactly 7 distinct faces
	// (4 + 4 - 1 shared) and one interior connection.
	if mesh.NumFaces != 7 {
		t.Fatalf("expected 7 faces, got %d", mesh.NumFaces)
	}

	interior := 0
	for _, neighbors := range mesh.EToE {
		for _, n := range neighbors {
			if n >= 0 {
				interior++
			}
		}
	}
	if interior != 2 {
		t.Fatalf("expected 2 interior face references (one per element), got %d", interior)
	}
}

func TestBuildConnectivityMixedElementTypes(t *testing.T) {
	mesh := buildMeshFromMSH(t, mixedMeshMSH)

	if mesh.NumElements != 5 {
		t.Fatalf("expected 5 elements, got %d", mesh.NumElements)
	}
	if len(mesh.EToE) != mesh.NumElements {
		t.Fatalf("expected EToE to have one row per element")
	}
}

func TestGetElementFacesTet(t *testing.T) {
	faces := GetElementFaces(Tet, []int{0, 1, 2, 3})
	if len(faces) != 4 {
		t.Fatalf("expected 4 faces for a tetrahedron, got %d", len(faces))
	}
	for _, f := range faces {
		if len(f) != 3 {
			t.Fatalf("expected 3 vertices per tet face, got %d", len(f))
		}
	}
}

func TestGetElementFacesHex(t *testing.T) {
	faces := GetElementFaces(Hex, []int{0, 1, 2, 3, 4, 5, 6, 7})
	if len(faces) != 6 {
		t.Fatalf("expected 6 faces for a hexahedron, got %d", len(faces))
	}
	for _, f := range faces {
		if len(f) != 4 {
			t.Fatalf("expected 4 vertices per hex face, got %d", len(f))
		}
	}
}

func TestGetElementFacesUnknownTypeReturnsEmpty(t *testing.T) {
	faces := GetElementFaces(ElementType(999), []int{0, 1, 2})
	if len(faces) != 0 {
		t.Fatalf("expected no faces for an unrecognized element type, got %d", len(faces))
	}
}

func TestElementTypeString(t *testing.T) {
	if Tet.String() != "Tet" {
		t.Fatalf("expected Tet.String() == \"Tet\", got %q", Tet.String())
	}
	if got := ElementType(999).String(); got != "ElementType(999)" {
		t.Fatalf("expected fallback formatting for unknown type, got %q", got)
	}
}
