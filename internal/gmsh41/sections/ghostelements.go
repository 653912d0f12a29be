package sections

import (
	"github.com/gmsh41/meshparser/internal/gmsh41/builder"
	"github.com/gmsh41/meshparser/internal/gmsh41/diag"
	"github.com/gmsh41/meshparser/internal/gmsh41/lexer"
)

// GhostElements parses $GhostElements: a numGhostElements header, then
// that many "elementTag ownerPartition numGhostPartitions
// ghostPartition..." records.
func GhostElements(sc *lexer.Scanner, b *builder.Builder) error {
	header, ok := sc.NextLine()
	if !ok {
		return diag.New(diag.InvalidFormat, "unexpected end of file in $GhostElements header", rangeAt(sc), sc.Origin())
	}
	hf := header.Fields()
	if len(hf) < 1 {
		return diag.New(diag.InvalidFormat, "expected \"numGhostElements\"", header.Range, sc.Origin())
	}
	numGhosts, err := sc.ParseInt(hf[0])
	if err != nil {
		return err
	}

	ghosts := make([]builder.GhostElement, 0, numGhosts)
	for i := 0; i < numGhosts; i++ {
		line, ok := sc.NextLine()
		if !ok {
			return diag.New(diag.InvalidFormat, "unexpected end of file reading ghost element record", rangeAt(sc), sc.Origin())
		}
		fields := line.Fields()
		if len(fields) < 3 {
			return diag.New(diag.InvalidFormat, "expected \"elementTag ownerPartition numGhostPartitions ghostPartition...\"", line.Range, sc.Origin())
		}
		elementTag, err := sc.ParseUint(fields[0])
		if err != nil {
			return err
		}
		owner, err := sc.ParseInt(fields[1])
		if err != nil {
			return err
		}
		numGhostPartitions, err := sc.ParseInt(fields[2])
		if err != nil {
			return err
		}
		if len(fields) < 3+numGhostPartitions {
			return diag.New(diag.InvalidData, "numGhostPartitions disagrees with the number of values present on the line", line.Range, sc.Origin())
		}
		partitions := make([]int, numGhostPartitions)
		for k := 0; k < numGhostPartitions; k++ {
			partitions[k], err = sc.ParseInt(fields[3+k])
			if err != nil {
				return err
			}
		}
		ghosts = append(ghosts, builder.GhostElement{
			ElementTag:      elementTag,
			OwnerPartition:  owner,
			GhostPartitions: partitions,
		})
	}

	if len(ghosts) != numGhosts {
		return diag.New(diag.InvalidData, "numGhostElements header disagrees with the number of records produced", hf[0].Range, sc.Origin())
	}

	if _, err := sc.ExpectSectionFooter("GhostElements"); err != nil {
		return err
	}
	b.SetGhostElements(ghosts)
	return nil
}
