// Package builder accumulates the section-by-section output of a parse
// into the final Mesh value, tracking the cross-section invariants (tag
// uniqueness, declared-vs-observed counts) the individual section
// parsers cannot check on their own. Grounded on DG3D/mesh/mesh_common.go's
// Mesh/NewMesh accumulation pattern — a plain struct built up field by
// field through helper Add* methods — generalised with first-seen-location
// tracking for duplicate tags. Header counts and min/max tags are checked
// by the section parsers themselves.
package builder

import "github.com/gmsh41/meshparser/internal/gmsh41/source"

// MeshFormat is the parsed $MeshFormat record.
type MeshFormat struct {
	Version  float64
	FileType int
	DataSize int
}

// PhysicalName is one $PhysicalNames record.
type PhysicalName struct {
	Dimension int
	Tag       int32
	Name      string
}

// PointEntity is a dimension-0 record from $Entities.
type PointEntity struct {
	Tag          int
	X, Y, Z      float64
	PhysicalTags []int32
}

// BoundedEntity is the shared shape of curve/surface/volume records.
type BoundedEntity struct {
	Tag              int
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
	PhysicalTags     []int32
	BoundingEntities []int
}

// Entities is the parsed $Entities section, present only when that
// section appeared in the source file.
type Entities struct {
	Points   map[int]*PointEntity
	Curves   map[int]*BoundedEntity
	Surfaces map[int]*BoundedEntity
	Volumes  map[int]*BoundedEntity
}

func newEntities() *Entities {
	return &Entities{
		Points:   make(map[int]*PointEntity),
		Curves:   make(map[int]*BoundedEntity),
		Surfaces: make(map[int]*BoundedEntity),
		Volumes:  make(map[int]*BoundedEntity),
	}
}

// PartitionedEntity mirrors one $PartitionedEntities ghost/partition
// record; stored faithfully, not interpreted.
type PartitionedEntity struct {
	Dimension        int
	Tag              int
	Parent           int
	Partitions       []int
	BoundingEntities []int
	PhysicalTags     []int32
}

// PartitionedEntities is the parsed $PartitionedEntities section.
type PartitionedEntities struct {
	NumPartitions int
	GhostEntities [][2]int // (tag, partition) pairs, stored as-is
	Entities      []PartitionedEntity
}

// Node is one node record within a NodeBlock.
type Node struct {
	Tag        uint64
	X, Y, Z    float64
	Parametric []float64
}

// NodeBlock is one $Nodes entity block.
type NodeBlock struct {
	EntityDim  int
	EntityTag  int
	Parametric bool
	Nodes      []Node
}

// Element is one element record within an ElementBlock.
type Element struct {
	Tag      uint64
	NodeTags []uint64
}

// ElementBlock is one $Elements entity block.
type ElementBlock struct {
	EntityDim   int
	EntityTag   int
	ElementType int
	Elements    []Element
}

// PeriodicLink is one $Periodic record.
type PeriodicLink struct {
	Dimension            int
	SlaveTag, MasterTag  int
	AffineTransform      []float64
	NodeCorrespondences  [][2]uint64
}

// PeriodicLinks is the parsed $Periodic section.
type PeriodicLinks struct {
	Links []PeriodicLink
}

// GhostElement is one $GhostElements record.
type GhostElement struct {
	ElementTag      uint64
	OwnerPartition  int
	GhostPartitions []int
}

// Parametrizations is the parsed $Parametrizations section, stored
// faithfully as an opaque set of curve/surface parametrization records.
type Parametrizations struct {
	Curves   []ParametrizationCurve
	Surfaces []ParametrizationSurface
}

// ParametrizationCurve is one curve parametrization record.
type ParametrizationCurve struct {
	Tag    int
	Nodes  int
	Points [][]float64
}

// ParametrizationSurface is one surface parametrization record.
type ParametrizationSurface struct {
	Tag       int
	NumPointsU, NumPointsV int
	Points    [][]float64
}

// PostProcessingView is the parsed body of $NodeData, $ElementData, or
// $ElementNodeData. The parser stores these faithfully without
// interpreting their semantics, per spec.
type PostProcessingView struct {
	StringTags  []string
	RealTags    []float64
	IntegerTags []int64
	Entries     []PostProcessingEntry
}

// PostProcessingEntry is one entity's worth of field values, optionally
// preceded by a per-element node count for $ElementNodeData.
type PostProcessingEntry struct {
	EntityTag           uint64
	NumNodesPerElement  int // 0 unless this came from $ElementNodeData
	Values              []float64
}

// InterpolationScheme is the parsed $InterpolationScheme section: a
// named scheme with per-element-type coefficient/exponent matrices.
type InterpolationScheme struct {
	Name    string
	Entries []InterpolationSchemeEntry
}

// InterpolationSchemeEntry is one element type's matrices within a
// scheme.
type InterpolationSchemeEntry struct {
	ElementType int
	Coefficients [][]float64
	Exponents    [][]float64
}

// Warning is a non-fatal condition accumulated during parsing.
type Warning struct {
	Message string
	Range   source.Range
}

// Mesh is the fully materialised result of a successful parse. It is
// built incrementally by Builder and is immutable once Parse/ParseBytes
// returns it.
type Mesh struct {
	Format               MeshFormat
	PhysicalNames        []PhysicalName
	Entities             *Entities
	PartitionedEntities  *PartitionedEntities
	NodeBlocks           []NodeBlock
	ElementBlocks        []ElementBlock
	Periodic             *PeriodicLinks
	GhostElements        []GhostElement
	Parametrizations     *Parametrizations
	NodeData             []PostProcessingView
	ElementData          []PostProcessingView
	ElementNodeData      []PostProcessingView
	InterpolationSchemes []InterpolationScheme
	Warnings             []Warning
}
