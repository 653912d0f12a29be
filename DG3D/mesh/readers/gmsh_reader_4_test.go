package readers

import (
	"os"
	"path/filepath"
	"testing"

	dgmesh "github.com/gmsh41/meshparser/DG3D/mesh"
	"github.com/stretchr/testify/require"
)

func writeTempMsh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.msh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadGmsh4EmptyMesh(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$Nodes
0 0 0 0
$EndNodes
$Elements
0 0 0 0
$EndElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 0, m.NumVertices)
	require.Equal(t, 0, m.NumElements)
}

func TestReadGmsh4SingleTet(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 1
1 0 0 0 1 1 1 0 0
$EndEntities
$Nodes
1 4 1 4
3 1 0 4
1
2
3
4
0 0 0
1 0 0
0 1 0
0 0 1
$EndNodes
$Elements
1 1 1 1
3 1 4 1
1 1 2 3 4
$EndElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 4, m.NumVertices)
	require.Equal(t, 1, m.NumElements)
	require.Equal(t, dgmesh.Tet, m.ElementTypes[0])
	require.Equal(t, []int{0, 1, 2, 3}, m.EtoV[0])
}

func TestReadGmsh4HigherOrderTet(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 1
1 0 0 0 1 1 1 0 0
$EndEntities
$Nodes
1 10 1 10
3 1 0 10
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
0 0 0
1 0 0
0 1 0
0 0 1
0.5 0 0
0.5 0.5 0
0 0.5 0
0.5 0 0.5
0 0.5 0.5
0 0 0.5
$EndNodes
$Elements
1 1 1 1
3 1 11 1
1 1 2 3 4 5 6 7 8 9 10
$EndElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 1, m.NumElements)
	require.Equal(t, dgmesh.Tet10, m.ElementTypes[0])
	require.Len(t, m.EtoV[0], 10)
}

func TestReadGmsh4UnsupportedElementTypeProducesWarning(t *testing.T) {
	// Element type 15 is Point, which has no DG3D representation.
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$Nodes
1 1 1 1
0 1 0 1
1
0 0 0
$EndNodes
$Elements
1 1 1 1
0 1 15 1
1 1
$EndElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Equal(t, 0, m.NumElements)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "no DG3D representation")
}

func TestReadGmsh4Periodic(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
4 4 2 0
1 0 0 0 0
2 1 0 0 0
3 1 1 0 0
4 0 1 0 0
1 0 0 0 1 0 0 0 2 1 -2
2 1 0 0 1 1 0 0 2 2 -3
3 0 1 0 1 1 0 0 2 3 -4
4 0 0 0 0 1 0 0 2 4 -1
1 0 0 0 1 1 0 0 4 1 2 3 4
2 0 0 1 1 1 1 0 4 1 2 3 4
$EndEntities
$Nodes
0 0 0 0
$EndNodes
$Elements
0 0 0 0
$EndElements
$Periodic
2
1 1 3
0
2
1 4
2 3
2 1 2
16
1 0 0 1 0 1 0 0 0 0 1 0 0 0 0 1
4
5 9
6 10
7 11
8 12
$EndPeriodic`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, m.Periodics, 2)

	p1 := m.Periodics[0]
	require.Equal(t, 1, p1.Dimension)
	require.Len(t, p1.NodeMap, 2)
	require.Empty(t, p1.AffineTransform)

	p2 := m.Periodics[1]
	require.Equal(t, 2, p2.Dimension)
	require.Len(t, p2.NodeMap, 4)
	require.Len(t, p2.AffineTransform, 16)
}

func TestReadGmsh4GhostElements(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 1
1 0 0 0 1 1 1 0 0
$EndEntities
$Nodes
1 4 1 4
3 1 0 4
1
2
3
4
0 0 0
1 0 0
0 1 0
0 0 1
$EndNodes
$Elements
1 1 1 1
3 1 4 1
1 1 2 3 4
$EndElements
$GhostElements
1
1 0 1 1
$EndGhostElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 1, m.NumElements)
	require.Len(t, m.GhostElements, 1)
	require.Equal(t, 1, m.GhostElements[0].ElementTag)
	require.Equal(t, 0, m.GhostElements[0].OwnerPartition)
	require.Equal(t, []int{1}, m.GhostElements[0].GhostPartitions)
}

func TestReadGmsh4EntitiesTranslated(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$PhysicalNames
1
3 30 "Volume"
$EndPhysicalNames
$Entities
0 0 0 1
1 0 0 0 1 1 1 1 30
$EndEntities
$Nodes
0 0 0 0
$EndNodes
$Elements
0 0 0 0
$EndElements`

	m, warnings, err := ReadGmsh4(writeTempMsh(t, content))
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, m.Entities, 1)
	vol, ok := m.Entities[1]
	require.True(t, ok)
	require.Equal(t, 3, vol.Dimension)
	require.Equal(t, []int{30}, vol.PhysicalTags)
}

func TestReadMeshFileRejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.su2")
	require.NoError(t, os.WriteFile(path, []byte("dummy"), 0o644))

	_, _, err := ReadMeshFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported mesh format")
}

func TestReadMeshFileDispatchesMsh(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat
$Entities
0 0 0 0
$EndEntities
$Nodes
0 0 0 0
$EndNodes
$Elements
0 0 0 0
$EndElements`

	m, _, err := ReadMeshFile(writeTempMsh(t, content))
	require.NoError(t, err)
	require.NotNil(t, m)
}
