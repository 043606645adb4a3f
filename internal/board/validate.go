package board

import (
	"fmt"
	"strings"

	"github.com/10thony/campaignion-engine/internal/entity"
	"github.com/10thony/campaignion-engine/internal/grid"
)

// costEpsilon absorbs float error in cost/range comparisons.
const costEpsilon = 1e-9

// ValidateMovement checks a proposed move against the snapshot. The
// pipeline short-circuits on the first failure, in order: bounds,
// movement-blocking conditions, occupancy, obstacles, terrain-weighted
// cost against maxRangeFeet. The cost is still reported when it is the
// reason for rejection.
func ValidateMovement(from, to grid.Position, snap Snapshot, p entity.Participant, maxRangeFeet float64, layout grid.Layout) Result {
	if !snap.Bounds.Contains(to) {
		return reject(CodeOutOfBounds, "Destination is outside the map bounds")
	}

	if blockers := restrictingConditions(p, entity.Condition.BlocksMovement); len(blockers) > 0 {
		return reject(CodeConditionRestricted,
			fmt.Sprintf("Movement is prevented by: %s", strings.Join(blockers, ", ")))
	}

	if id, occupied := snap.OccupiedBy(to); occupied && id != p.ID() {
		return reject(CodeDestinationOccupied, "Destination is occupied by another entity")
	}

	if snap.Blocked(to) {
		return reject(CodeDestinationBlocked, "Destination is blocked by an obstacle")
	}

	path := SamplePath(from, to)
	cost := pathCost(path, snap, layout)
	if cost > maxRangeFeet+costEpsilon {
		res := reject(CodeRangeExceeded,
			fmt.Sprintf("Move costs %.1f ft but only %.1f ft is available", cost, maxRangeFeet))
		res.Cost = cost
		return res
	}

	return Result{OK: true, Cost: cost, Path: path, LineOfSight: LineOfSight(from, to, snap)}
}

// ValidateAttack checks a proposed attack against the snapshot.
// Attacking does not require stepping onto the target cell, so the
// occupancy and obstacle destination checks are skipped; line of sight
// and range are enforced instead. Range here is plain grid distance,
// not terrain-weighted cost.
func ValidateAttack(from, to grid.Position, snap Snapshot, p entity.Participant, maxRangeFeet float64, layout grid.Layout) Result {
	if !snap.Bounds.Contains(to) {
		return reject(CodeOutOfBounds, "Target cell is outside the map bounds")
	}

	if blockers := restrictingConditions(p, entity.Condition.BlocksAttack); len(blockers) > 0 {
		return reject(CodeConditionRestricted,
			fmt.Sprintf("Attacking is prevented by: %s", strings.Join(blockers, ", ")))
	}

	targetID, occupied := snap.OccupiedBy(to)
	if !occupied {
		return reject(CodeNoTarget, "No target at the selected cell")
	}
	if targetID == p.ID() {
		return reject(CodeSelfTargetInvalid, "Cannot target yourself")
	}

	if !LineOfSight(from, to, snap) {
		return reject(CodeNoLineOfSight, "No line of sight to the target")
	}

	dist := grid.Distance(from, to, layout)
	if dist > maxRangeFeet+costEpsilon {
		res := reject(CodeRangeExceeded,
			fmt.Sprintf("Target is %.1f ft away but the maximum range is %.1f ft", dist, maxRangeFeet))
		res.Range = dist
		return res
	}

	return Result{OK: true, Range: dist, LineOfSight: true}
}

// restrictingConditions collects the display names of the
// participant's conditions for which restricts reports true.
func restrictingConditions(p entity.Participant, restricts func(entity.Condition) bool) []string {
	var names []string
	for _, c := range p.Conditions() {
		if restricts(c) {
			names = append(names, c.DisplayName())
		}
	}
	return names
}
