package diag

import (
	"errors"
	"testing"

	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

func TestNewDiagnosticImplementsError(t *testing.T) {
	d := New(InvalidData, "numNodes header disagrees with observed count", source.Range{Begin: 10, End: 12}, "cube.msh")
	var err error = d
	if err.Error() == "" {
		t.Fatalf("expected non-empty error message")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("strconv: parsing \"abc\": invalid syntax")
	d := Wrap(InvalidData, "bad integer literal", source.Range{Begin: 0, End: 3}, "cube.msh", cause)
	if !errors.Is(d, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
}

func TestRenderIncludesRangeAndKind(t *testing.T) {
	buf := source.NewBuffer([]byte("$Nodes\n5 4 1 4\n$EndNodes\n"), "cube.msh")
	d := New(InvalidData, "numNodes header disagrees with observed count", source.Range{Begin: 7, End: 8}, "cube.msh")
	rendered := d.Render(buf)
	if rendered == "" {
		t.Fatalf("expected non-empty render")
	}
}

func TestErrorIncludesRunIDWhenSet(t *testing.T) {
	d := New(InvalidData, "bad header", source.Range{Begin: 0, End: 1}, "cube.msh")
	d.RunID = "9f1c8f5e-1111-4a2b-9c3d-000000000000"
	if !contains(d.Error(), d.RunID) {
		t.Fatalf("expected error message to include RunID, got %q", d.Error())
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
