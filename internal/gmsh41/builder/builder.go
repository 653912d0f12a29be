package builder

import (
	"fmt"

	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/source"
)

// Builder accumulates a Mesh across the section parsers, tracking the
// state needed to enforce cross-section invariants (global tag
// uniqueness, element-to-node references, physical-name references)
// that no single section parser can check on its own. Declared-vs-observed
// counts and extrema are checked by the section parsers themselves.
type Builder struct {
	Origin string

	mesh Mesh

	formatSet bool

	seenSections map[string]bool

	nodeTagFirstSeen    map[uint64]source.Range
	elementTagFirstSeen map[uint64]source.Range

	physicalNamesSeen bool
	entitiesSeen      bool
	namedPhysicalTags map[[2]int]bool // (dimension, tag) pairs with a PhysicalName

	// pendingNodeRefs holds every node tag an element referenced, checked
	// against nodeTagFirstSeen only once the whole file has been scanned
	// (see RecordElementNodeReference).
	pendingNodeRefs []nodeReference

	opts Options
}

type nodeReference struct {
	Tag   uint64
	Range source.Range
}

// Options controls the handful of conditions spec.md leaves as a
// caller's choice rather than a fixed rule: what to do when an entity
// references a physical tag with no matching $PhysicalNames entry.
type Options struct {
	// StrictMode turns that condition into a fatal InvalidData
	// diagnostic instead of a warning.
	StrictMode bool
	// WarnOnMissingPhysicalName controls whether the condition is
	// reported at all when StrictMode is off. Ignored when StrictMode
	// is on, since the condition is then always reported, as an error.
	WarnOnMissingPhysicalName bool
}

// DefaultOptions is the behavior a Builder gets unless SetOptions is
// called: unnamed physical tag references warn but never fail a parse.
func DefaultOptions() Options {
	return Options{StrictMode: false, WarnOnMissingPhysicalName: true}
}

// New returns an empty Builder for a parse of the given origin (file
// path, or a caller-supplied label for in-memory input), using
// DefaultOptions.
func New(origin string) *Builder {
	return &Builder{
		Origin:              origin,
		seenSections:        make(map[string]bool),
		nodeTagFirstSeen:    make(map[uint64]source.Range),
		elementTagFirstSeen: make(map[uint64]source.Range),
		namedPhysicalTags:   make(map[[2]int]bool),
		opts:                DefaultOptions(),
	}
}

// SetOptions overrides the builder's Options. Callers that never call
// this get DefaultOptions.
func (b *Builder) SetOptions(o Options) {
	b.opts = o
}

// MarkSection records that a section header was seen, returning a
// DuplicateSection diagnostic if it was already seen once.
func (b *Builder) MarkSection(name string, r source.Range) error {
	if b.seenSections[name] {
		return diag.New(diag.DuplicateSection, "section $"+name+" appears more than once", r, b.Origin)
	}
	b.seenSections[name] = true
	return nil
}

// SetFormat records the $MeshFormat record. It is always the first
// section a well-formed file provides.
func (b *Builder) SetFormat(f MeshFormat) {
	b.mesh.Format = f
	b.formatSet = true
}

// FormatSet reports whether $MeshFormat has been recorded yet.
func (b *Builder) FormatSet() bool {
	return b.formatSet
}

// AddPhysicalName appends a $PhysicalNames record and remembers its
// (dimension, tag) pair for the later cross-check against entity
// physical-tag references.
func (b *Builder) AddPhysicalName(p PhysicalName) {
	b.mesh.PhysicalNames = append(b.mesh.PhysicalNames, p)
	b.physicalNamesSeen = true
	b.namedPhysicalTags[[2]int{p.Dimension, int(p.Tag)}] = true
}

// PhysicalNamesSeen reports whether a $PhysicalNames section appeared.
func (b *Builder) PhysicalNamesSeen() bool {
	return b.physicalNamesSeen
}

// SetEntities records the fully parsed $Entities section and checks
// every entity's physical tags against the physical-name table. By
// default an unnamed reference only warns, per spec's stated non-fatal
// treatment; under Options.StrictMode it is instead reported as the
// returned error, and Options.WarnOnMissingPhysicalName can suppress
// the warning entirely when not in strict mode.
func (b *Builder) SetEntities(e *Entities, dimTagRanges map[[2]int]source.Range) error {
	b.mesh.Entities = e
	b.entitiesSeen = true

	if !b.physicalNamesSeen {
		return nil
	}

	var firstBad error
	check := func(dim, tag int, physTags []int32) {
		for _, pt := range physTags {
			key := [2]int{dim, int(pt)}
			if b.namedPhysicalTags[key] {
				continue
			}
			r := dimTagRanges[[2]int{dim, tag}]
			msg := fmt.Sprintf("entity (dim=%d, tag=%d) references physical tag %d with no matching $PhysicalNames entry", dim, tag, pt)
			if b.opts.StrictMode {
				if firstBad == nil {
					firstBad = diag.New(diag.InvalidData, msg, r, b.Origin)
				}
				continue
			}
			if b.opts.WarnOnMissingPhysicalName {
				b.AddWarning(msg, r)
			}
		}
	}
	for tag, p := range e.Points {
		check(0, tag, p.PhysicalTags)
	}
	for tag, c := range e.Curves {
		check(1, tag, c.PhysicalTags)
	}
	for tag, s := range e.Surfaces {
		check(2, tag, s.PhysicalTags)
	}
	for tag, v := range e.Volumes {
		check(3, tag, v.PhysicalTags)
	}
	return firstBad
}

// EntitiesSeen reports whether an $Entities section appeared.
func (b *Builder) EntitiesSeen() bool {
	return b.entitiesSeen
}

// SetPartitionedEntities records the parsed $PartitionedEntities section.
func (b *Builder) SetPartitionedEntities(p *PartitionedEntities) {
	b.mesh.PartitionedEntities = p
}

// AddNodeTag registers a node tag's first occurrence, returning a
// DuplicateTag diagnostic if it was already registered.
func (b *Builder) AddNodeTag(tag uint64, r source.Range) error {
	if first, ok := b.nodeTagFirstSeen[tag]; ok {
		_ = first
		return diag.New(diag.DuplicateTag, fmt.Sprintf("node tag %d appears more than once", tag), r, b.Origin)
	}
	b.nodeTagFirstSeen[tag] = r
	return nil
}

// AddElementTag registers an element tag's first occurrence, returning
// a DuplicateTag diagnostic if it was already registered.
func (b *Builder) AddElementTag(tag uint64, r source.Range) error {
	if first, ok := b.elementTagFirstSeen[tag]; ok {
		_ = first
		return diag.New(diag.DuplicateTag, fmt.Sprintf("element tag %d appears more than once", tag), r, b.Origin)
	}
	b.elementTagFirstSeen[tag] = r
	return nil
}

// AddNodeBlock appends a completed NodeBlock.
func (b *Builder) AddNodeBlock(nb NodeBlock) {
	b.mesh.NodeBlocks = append(b.mesh.NodeBlocks, nb)
}

// AddElementBlock appends a completed ElementBlock.
func (b *Builder) AddElementBlock(eb ElementBlock) {
	b.mesh.ElementBlocks = append(b.mesh.ElementBlocks, eb)
}

// NodeTagExists reports whether a node tag has been seen in any
// NodeBlock so far.
func (b *Builder) NodeTagExists(tag uint64) bool {
	_, ok := b.nodeTagFirstSeen[tag]
	return ok
}

// RecordElementNodeReference notes that an element referenced the given
// node tag at r. Section order after $MeshFormat is not fixed, so a
// $Elements block may be scanned before the $Nodes block defining the
// tags it references; the reference is validated once in Finish, after
// the whole file (and therefore every NodeBlock) has been seen.
func (b *Builder) RecordElementNodeReference(tag uint64, r source.Range) {
	b.pendingNodeRefs = append(b.pendingNodeRefs, nodeReference{Tag: tag, Range: r})
}

// SetPeriodic records the parsed $Periodic section. If no $Entities
// section has appeared yet, a warning is emitted per spec §4.12.
func (b *Builder) SetPeriodic(p *PeriodicLinks, r source.Range) {
	b.mesh.Periodic = p
	if !b.entitiesSeen {
		b.AddWarning("$Periodic section present without a preceding $Entities section", r)
	}
}

// SetGhostElements records the parsed $GhostElements section.
func (b *Builder) SetGhostElements(g []GhostElement) {
	b.mesh.GhostElements = g
}

// SetParametrizations records the parsed $Parametrizations section.
func (b *Builder) SetParametrizations(p *Parametrizations) {
	b.mesh.Parametrizations = p
}

// AddNodeData appends one $NodeData view.
func (b *Builder) AddNodeData(v PostProcessingView) {
	b.mesh.NodeData = append(b.mesh.NodeData, v)
}

// AddElementData appends one $ElementData view.
func (b *Builder) AddElementData(v PostProcessingView) {
	b.mesh.ElementData = append(b.mesh.ElementData, v)
}

// AddElementNodeData appends one $ElementNodeData view.
func (b *Builder) AddElementNodeData(v PostProcessingView) {
	b.mesh.ElementNodeData = append(b.mesh.ElementNodeData, v)
}

// AddInterpolationScheme appends one $InterpolationScheme record.
func (b *Builder) AddInterpolationScheme(s InterpolationScheme) {
	b.mesh.InterpolationSchemes = append(b.mesh.InterpolationSchemes, s)
}

// AddWarning appends a non-fatal Warning.
func (b *Builder) AddWarning(message string, r source.Range) {
	b.mesh.Warnings = append(b.mesh.Warnings, Warning{Message: message, Range: r})
}

// Finish returns the accumulated Mesh. It requires that $MeshFormat was
// recorded; callers (the driver) are responsible for enforcing the
// "$MeshFormat must appear first" ordering rule before calling section
// parsers at all.
func (b *Builder) Finish() (Mesh, error) {
	if !b.formatSet {
		return Mesh{}, diag.New(diag.MissingSection, "file does not contain a $MeshFormat section", source.Range{}, b.Origin)
	}
	for _, ref := range b.pendingNodeRefs {
		if _, ok := b.nodeTagFirstSeen[ref.Tag]; !ok {
			return Mesh{}, diag.New(diag.InvalidData, fmt.Sprintf("element references node tag %d which does not appear in $Nodes", ref.Tag), ref.Range, b.Origin)
		}
	}
	return b.mesh, nil
}
