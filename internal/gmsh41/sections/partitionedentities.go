package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// PartitionedEntities parses $PartitionedEntities: a numPartitions
// header, a numGhostEntities header followed by that many "tag
// partition" ghost pairs, then four entity-count headers each followed
// by that many partitioned entity records carrying the same
// tag/bbox/physical-tag/bounding shape as $Entities plus a parent
// entity and partition list.
func PartitionedEntities(sc *lexer.Scanner, b *builder.Builder) error {
	numPartLine, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $PartitionedEntities header", rangeAt(sc), sc.Origin())
	}
	npf := numPartLine.Fields()
	if len(npf) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numPartitions\"", numPartLine.Range, sc.Origin())
	}
	numPartitions, err := sc.ParseInt(npf[0])
	if err != nil {
		return err
	}

	ghostHeader, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file reading numGhostEntities", rangeAt(sc), sc.Origin())
	}
	ghf := ghostHeader.Fields()
	if len(ghf) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numGhostEntities\"", ghostHeader.Range, sc.Origin())
	}
	numGhostEntities, err := sc.ParseInt(ghf[0])
	if err != nil {
		return err
	}
	ghostPairs := make([][2]int, 0, numGhostEntities)
	for i := 0; i < numGhostEntities; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading ghost entity pair", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 2 {
			return diag.New(diag.InvalidFormat, "expected \"tag partition\"", line.Range, sc.Origin())
		}
		tag, err := sc.ParseInt(fields[0])
		if err != nil {
			return err
		}
		partition, err := sc.ParseInt(fields[1])
		if err != nil {
			return err
		}
		ghostPairs = append(ghostPairs, [2]int{tag, partition})
	}

	countHeader, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file reading partitioned entity counts", rangeAt(sc), sc.Origin())
	}
	chf := countHeader.Fields()
	if len(chf) < 4 {
		return diag.New(diag.InvalidFormat, "expected \"numPoints numCurves numSurfaces numVolumes\"", countHeader.Range, sc.Origin())
	}
	counts := make([]int, 4)
	for i := 0; i < 4; i++ {
		counts[i], err = sc.ParseInt(chf[i])
		if err != nil {
			return err
		}
	}

	var entities []builder.PartitionedEntity
	for dim, count := range counts {
		for i := 0; i < count; i++ {
			rec, err := readPartitionedEntityRecord(sc, dim)
			if err != nil {
				return err
			}
			entities = append(entities, rec)
		}
	}

	if _, err := sc.ExpectSectionFooter("PartitionedEntities"); err != nil {
		return err
	}

	b.SetPartitionedEntities(&builder.PartitionedEntities{
		NumPartitions: numPartitions,
		GhostEntities: ghostPairs,
		Entities:      entities,
	})
	return nil
}

func readPartitionedEntityRecord(sc *lexer.Scanner, dim int) (builder.PartitionedEntity, error) {
	line, ok := sc.NextLine()
	if !ok {
		return builder.PartitionedEntity{}, diag.New(diag.InvalidFormat, "unexpected end of file reading partitioned entity record", rangeAt(sc), sc.Origin())
	}
	fields := line.Fields()
	// tag parentDim parentTag numPartitions partition... [bbox for dim>0] numPhysicalTags physTag... [numBounding boundingTag...]
	if len(fields) < 4 {
		return builder.PartitionedEntity{}, diag.New(diag.InvalidFormat, "expected a partitioned entity record", line.Range, sc.Origin())
	}
	tag, err := sc.ParseInt(fields[0])
	if err != nil {
		return builder.PartitionedEntity{}, err
	}
	// parentDim is read but not separately stored; parent tag is what the
	// mesh needs to associate ghost geometry back to its owning entity.
	if _, err := sc.ParseInt(fields[1]); err != nil {
		return builder.PartitionedEntity{}, err
	}
	parentTag, err := sc.ParseInt(fields[2])
	if err != nil {
		return builder.PartitionedEntity{}, err
	}
	partitions, next, err := readTaggedList(sc, fields, 3)
	if err != nil {
		return builder.PartitionedEntity{}, err
	}

	pos := next
	if dim == 0 {
		pos += 3 // skip x y z, stored uninterpreted for partitioned points
	} else {
		pos += 6 // skip bounding-box sextet, stored uninterpreted for partitioned entities
	}
	physTags, next2, err := readTaggedList(sc, fields, pos)
	if err != nil {
		return builder.PartitionedEntity{}, err
	}

	// A partitioned point record ends after its physical-tag list; only
	// curves/surfaces/volumes carry a trailing bounding-entity list.
	var bounding []int
	if dim > 0 {
		bounding, _, err = readTaggedList(sc, fields, next2)
		if err != nil {
			return builder.PartitionedEntity{}, err
		}
	}

	return builder.PartitionedEntity{
		Dimension:        dim,
		Tag:              tag,
		Parent:           parentTag,
		Partitions:       partitions,
		BoundingEntities: bounding,
		PhysicalTags:     toInt32Slice(physTags),
	}, nil
}
