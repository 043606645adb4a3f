package grid

// Distance returns the tabletop distance between two cells in feet.
//
// Square layout follows the 5e diagonal-discount rule with the flat
// 7.5 ft average per diagonal: cost = 5*straight + 7.5*diagonal where
// diagonal = min(|dx|,|dy|) and straight = max(|dx|,|dy|) - diagonal.
// Hex layout converts odd-r offset coordinates to cube coordinates and
// uses the cube distance, 5 ft per hex.
func Distance(a, b Position, layout Layout) float64 {
	if layout == Hex {
		return float64(hexCellDistance(a, b)) * FeetPerCell
	}
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	diagonal := min(dx, dy)
	straight := max(dx, dy) - diagonal
	return FeetPerCell*float64(straight) + diagonalFeet*float64(diagonal)
}

// cube holds hexagonal cube coordinates (q + r + s == 0).
type cube struct {
	q, r, s int
}

// toCube converts an odd-r offset position to cube coordinates.
func toCube(p Position) cube {
	q := p.X - (p.Y-p.Y&1)/2
	r := p.Y
	return cube{q: q, r: r, s: -q - r}
}

// hexCellDistance is the cube-coordinate hex distance in cells.
func hexCellDistance(a, b Position) int {
	ca, cb := toCube(a), toCube(b)
	return (abs(ca.q-cb.q) + abs(ca.r-cb.r) + abs(ca.s-cb.s)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
