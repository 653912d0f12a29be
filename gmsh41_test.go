package gmsh41

import (
	"testing"

	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalValidFile(t *testing.T) {
	content := "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"
	mesh, err := ParseBytes([]byte(content), "<minimal>")
	require.NoError(t, err)
	require.Equal(t, 4.1, mesh.Format.Version)
	require.Equal(t, 0, mesh.Format.FileType)
	require.Equal(t, 8, mesh.Format.DataSize)
	require.Empty(t, mesh.NodeBlocks)
	require.Empty(t, mesh.ElementBlocks)
	require.Empty(t, mesh.Warnings)
}

func singleTetContent() string {
	return "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 15 0\n$EndEntities\n" +
		"$Nodes\n1 4 1 4\n3 1 0 4\n1\n2\n3\n4\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n$EndNodes\n" +
		"$Elements\n1 1 1 1\n3 1 4 1\n1 1 2 3 4\n$EndElements\n"
}

func TestParseSingleTetMesh(t *testing.T) {
	mesh, err := ParseBytes([]byte(singleTetContent()), "<single-tet>")
	require.NoError(t, err)
	require.Equal(t, 4, countNodes(mesh))
	require.Equal(t, 1, countElements(mesh))

	require.Len(t, mesh.PhysicalNames, 1)
	require.Equal(t, "TheBox", mesh.PhysicalNames[0].Name)
	require.Equal(t, 3, mesh.PhysicalNames[0].Dimension)
	require.EqualValues(t, 15, mesh.PhysicalNames[0].Tag)

	require.NotNil(t, mesh.Entities)
	volume, ok := mesh.Entities.Volumes[1]
	require.True(t, ok)
	require.Len(t, volume.PhysicalTags, 1)
	require.EqualValues(t, 15, volume.PhysicalTags[0])

	require.Len(t, mesh.ElementBlocks, 1)
	require.Equal(t, 3, mesh.ElementBlocks[0].EntityDim)
	require.Equal(t, 1, mesh.ElementBlocks[0].EntityTag)
	require.Len(t, mesh.ElementBlocks[0].Elements, 1)
}

func TestParseHeaderCountMismatch(t *testing.T) {
	bad := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 15 0\n$EndEntities\n" +
		"$Nodes\n1 5 1 4\n3 1 0 4\n1\n2\n3\n4\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n$EndNodes\n" +
		"$Elements\n1 1 1 1\n3 1 4 1\n1 1 2 3 4\n$EndElements\n"

	_, err := ParseBytes([]byte(bad), "<mismatch>")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diag.InvalidData, d.Kind)
}

func TestParseDuplicateNodeTag(t *testing.T) {
	bad := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 15 0\n$EndEntities\n" +
		"$Nodes\n1 4 1 1\n3 1 0 4\n1\n1\n1\n1\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n$EndNodes\n" +
		"$Elements\n1 1 1 1\n3 1 4 1\n1 1 2 3 4\n$EndElements\n"

	_, err := ParseBytes([]byte(bad), "<dup-tag>")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diag.DuplicateTag, d.Kind)
}

func TestParseUnknownSectionTolerated(t *testing.T) {
	content := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 15 0\n$EndEntities\n" +
		"$MyCustom\nsome unrecognised body\n$EndMyCustom\n" +
		"$Nodes\n1 4 1 4\n3 1 0 4\n1\n2\n3\n4\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n$EndNodes\n" +
		"$Elements\n1 1 1 1\n3 1 4 1\n1 1 2 3 4\n$EndElements\n"

	mesh, err := ParseBytes([]byte(content), "<unknown-section>")
	require.NoError(t, err)
	require.Len(t, mesh.Warnings, 1)
	require.Contains(t, mesh.Warnings[0].Message, "MyCustom")
	require.Equal(t, 4, countNodes(mesh))
}

func TestParsePeriodicSectionPresent(t *testing.T) {
	content := singleTetContent()
	// insert $Periodic before $Nodes so $Entities has already appeared.
	marker := "$Nodes\n"
	periodic := "$Periodic\n1\n2 2 1\n3 1 0 0\n0\n$EndPeriodic\n"
	idx := indexOf(content, marker)
	require.True(t, idx >= 0)
	content = content[:idx] + periodic + content[idx:]

	mesh, err := ParseBytes([]byte(content), "<periodic>")
	require.NoError(t, err)
	require.NotNil(t, mesh.Periodic)
	require.Len(t, mesh.Periodic.Links, 1)
	require.Equal(t, []float64{1, 0, 0}, mesh.Periodic.Links[0].AffineTransform)
	require.Equal(t, 4, countNodes(mesh))
	require.Equal(t, 1, countElements(mesh))
}

func TestParseMissingMeshFormatFails(t *testing.T) {
	content := "$PhysicalNames\n0\n$EndPhysicalNames\n"
	_, err := ParseBytes([]byte(content), "<no-format>")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diag.MissingSection, d.Kind)
}

func TestParseDuplicateSectionFails(t *testing.T) {
	content := "$MeshFormat\n4.1 0 8\n$EndMeshFormat\n$MeshFormat\n4.1 0 8\n$EndMeshFormat\n"
	_, err := ParseBytes([]byte(content), "<dup-section>")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diag.DuplicateSection, d.Kind)
}

func TestParseUnnamedPhysicalTagWarnsByDefault(t *testing.T) {
	content := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 99 0\n$EndEntities\n"

	mesh, err := ParseBytes([]byte(content), "<unnamed-phys-tag>")
	require.NoError(t, err)
	require.Len(t, mesh.Warnings, 1)
	require.Contains(t, mesh.Warnings[0].Message, "physical tag 99")
}

func TestParseUnnamedPhysicalTagFailsUnderStrictMode(t *testing.T) {
	content := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 99 0\n$EndEntities\n"

	opts := DefaultParseOptions()
	opts.StrictMode = true
	_, err := ParseBytesWithOptions([]byte(content), "<strict>", opts)
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	require.Equal(t, diag.InvalidData, d.Kind)
	require.Contains(t, d.Message, "physical tag 99")
}

func TestParseUnnamedPhysicalTagSilentWhenWarningDisabled(t *testing.T) {
	content := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n" +
		"$Entities\n0 0 0 1\n1 0 0 0 1 1 1 1 99 0\n$EndEntities\n"

	opts := ParseOptions{StrictMode: false, WarnOnMissingPhysicalName: false}
	mesh, err := ParseBytesWithOptions([]byte(content), "<quiet>", opts)
	require.NoError(t, err)
	require.Empty(t, mesh.Warnings)
}

func TestParseStrayContentOutsideSectionWarnsAndContinues(t *testing.T) {
	content := "" +
		"$MeshFormat\n4.1 0 8\n$EndMeshFormat\n" +
		"some stray line that isn't a section header\n" +
		"$PhysicalNames\n1\n3 15 \"TheBox\"\n$EndPhysicalNames\n"

	mesh, err := ParseBytes([]byte(content), "<stray-content>")
	require.NoError(t, err)
	require.Len(t, mesh.Warnings, 1)
	require.Contains(t, mesh.Warnings[0].Message, "outside of sections")
	require.Len(t, mesh.PhysicalNames, 1)
}

func countNodes(m *Mesh) int {
	n := 0
	for _, b := range m.NodeBlocks {
		n += len(b.Nodes)
	}
	return n
}

func countElements(m *Mesh) int {
	n := 0
	for _, b := range m.ElementBlocks {
		n += len(b.Elements)
	}
	return n
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
