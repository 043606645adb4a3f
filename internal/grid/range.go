package grid

// rangeEpsilon absorbs float error on the <= comparison so that a cell
// exactly at the range boundary is always included.
const rangeEpsilon = 1e-9

// CellsWithinRange returns every in-bounds position whose Distance to
// center is at most rangeFeet. Movement highlighting and circular AoE
// templates share this query. A range of zero yields exactly {center}
// when the center is in bounds.
func CellsWithinRange(center Position, rangeFeet float64, bounds Bounds, layout Layout) []Position {
	if rangeFeet < 0 {
		return nil
	}
	// A window of range/5 cells plus slack covers both layouts; the
	// distance test below does the exact filtering.
	window := int(rangeFeet/FeetPerCell) + 2

	cells := make([]Position, 0)
	for y := center.Y - window; y <= center.Y+window; y++ {
		for x := center.X - window; x <= center.X+window; x++ {
			p := Position{X: x, Y: y}
			if !bounds.Contains(p) {
				continue
			}
			if Distance(center, p, layout) <= rangeFeet+rangeEpsilon {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
