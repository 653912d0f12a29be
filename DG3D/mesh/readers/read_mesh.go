package readers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gmsh41/meshparser/DG3D/mesh"
)

// ReadMeshFile reads a mesh file based on extension. Only Gmsh MSH 4.1
// ASCII files are supported; the Gambit neutral and SU2 readers the
// original tool chain carried never had a corresponding parser in this
// package and are not resurrected here.
func ReadMeshFile(filename string) (*mesh.Mesh, []string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh4(filename)
	default:
		return nil, nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}
