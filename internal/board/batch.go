package board

import (
	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
)

// ValidMovementPositions evaluates the movement validator over every
// cell within range of the participant and returns the passing cells
// keyed by Position.Key. The set is for highlighting only: map state
// may change between render and click, so the commit path must
// re-validate the chosen cell against a fresh snapshot.
func ValidMovementPositions(p entity.Participant, snap Snapshot, maxRangeFeet float64, layout grid.Layout) map[string]grid.Position {
	valid := make(map[string]grid.Position)
	for _, cell := range grid.CellsWithinRange(p.Position(), maxRangeFeet, snap.Bounds, layout) {
		if ValidateMovement(p.Position(), cell, snap, p, maxRangeFeet, layout).OK {
			valid[cell.Key()] = cell
		}
	}
	return valid
}

// ValidAttackTargets evaluates the attack validator over every cell
// within range and returns the passing cells keyed by Position.Key.
// Same advisory contract as ValidMovementPositions.
func ValidAttackTargets(p entity.Participant, snap Snapshot, maxRangeFeet float64, layout grid.Layout) map[string]grid.Position {
	valid := make(map[string]grid.Position)
	for _, cell := range grid.CellsWithinRange(p.Position(), maxRangeFeet, snap.Bounds, layout) {
		if ValidateAttack(p.Position(), cell, snap, p, maxRangeFeet, layout).OK {
			valid[cell.Key()] = cell
		}
	}
	return valid
}
