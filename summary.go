package gmsh41

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/floats"
)

// Summary is the digest rendered by PrintSummary/PrintSummaryYAML: a
// flattened, presentation-oriented view over a Mesh, not part of the
// parse result itself.
type Summary struct {
	Version           float64  `json:"version"`
	NumPhysicalNames  int      `json:"numPhysicalNames"`
	NumPoints         int      `json:"numPoints"`
	NumCurves         int      `json:"numCurves"`
	NumSurfaces       int      `json:"numSurfaces"`
	NumVolumes        int      `json:"numVolumes"`
	NumNodes          int      `json:"numNodes"`
	NumElements       int      `json:"numElements"`
	NumPeriodicLinks  int      `json:"numPeriodicLinks"`
	NumGhostElements  int      `json:"numGhostElements"`
	BoundingBoxMin    []float64 `json:"boundingBoxMin,omitempty"`
	BoundingBoxMax    []float64 `json:"boundingBoxMax,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
}

// summarize flattens a Mesh into its printable Summary, computing the
// overall node bounding box with gonum/floats over the collected
// coordinate slices.
func summarize(m *Mesh) Summary {
	s := Summary{Version: m.Format.Version, NumPhysicalNames: len(m.PhysicalNames)}

	if m.Entities != nil {
		s.NumPoints = len(m.Entities.Points)
		s.NumCurves = len(m.Entities.Curves)
		s.NumSurfaces = len(m.Entities.Surfaces)
		s.NumVolumes = len(m.Entities.Volumes)
	}

	var xs, ys, zs []float64
	for _, block := range m.NodeBlocks {
		s.NumNodes += len(block.Nodes)
		for _, n := range block.Nodes {
			xs = append(xs, n.X)
			ys = append(ys, n.Y)
			zs = append(zs, n.Z)
		}
	}
	for _, block := range m.ElementBlocks {
		s.NumElements += len(block.Elements)
	}
	if m.Periodic != nil {
		s.NumPeriodicLinks = len(m.Periodic.Links)
	}
	s.NumGhostElements = len(m.GhostElements)

	if len(xs) > 0 {
		s.BoundingBoxMin = []float64{floats.Min(xs), floats.Min(ys), floats.Min(zs)}
		s.BoundingBoxMax = []float64{floats.Max(xs), floats.Max(ys), floats.Max(zs)}
	}

	for _, w := range m.Warnings {
		s.Warnings = append(s.Warnings, w.Message)
	}
	return s
}

// PrintSummary writes a human-readable digest of the mesh to w: format
// version, per-section counts, and any accumulated warnings.
func (m *Mesh) PrintSummary(w io.Writer) {
	s := summarize(m)
	fmt.Fprintf(w, "MSH format version: %.1f\n", s.Version)
	fmt.Fprintf(w, "physical names:     %d\n", s.NumPhysicalNames)
	fmt.Fprintf(w, "entities:           %d points, %d curves, %d surfaces, %d volumes\n",
		s.NumPoints, s.NumCurves, s.NumSurfaces, s.NumVolumes)
	fmt.Fprintf(w, "nodes:              %d\n", s.NumNodes)
	fmt.Fprintf(w, "elements:           %d\n", s.NumElements)
	if s.BoundingBoxMin != nil {
		fmt.Fprintf(w, "bounding box:       min=%v max=%v\n", s.BoundingBoxMin, s.BoundingBoxMax)
	}
	if s.NumPeriodicLinks > 0 {
		fmt.Fprintf(w, "periodic links:     %d\n", s.NumPeriodicLinks)
	}
	if s.NumGhostElements > 0 {
		fmt.Fprintf(w, "ghost elements:     %d\n", s.NumGhostElements)
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintf(w, "warnings:\n")
		for _, msg := range s.Warnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}

// PrintSummaryYAML writes the same digest as PrintSummary, serialised as
// YAML via ghodss/yaml.
func (m *Mesh) PrintSummaryYAML(w io.Writer) error {
	s := summarize(m)
	out, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
