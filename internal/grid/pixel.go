package grid

import "math"

// Pixel is a point in render space. The engine never draws; it only
// agrees with the presentation layer on where cell centers sit.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const sqrt3 = 1.7320508075688772

// ToPixel returns the render-space center of a cell.
//
// Square cells are cellSize wide with centers at (x+0.5, y+0.5) cells.
// Hex cells are pointy-top with odd-r offset rows; cellSize is the hex
// circumradius.
func ToPixel(p Position, cellSize float64, layout Layout) Pixel {
	if layout == Hex {
		return Pixel{
			X: cellSize * sqrt3 * (float64(p.X) + 0.5*float64(p.Y&1)),
			Y: cellSize * 1.5 * float64(p.Y),
		}
	}
	return Pixel{
		X: (float64(p.X) + 0.5) * cellSize,
		Y: (float64(p.Y) + 0.5) * cellSize,
	}
}

// ToGrid maps a render-space point back to the cell whose center is
// nearest. A naive estimate is refined by searching its 3x3
// neighborhood, which resolves boundary pixels deterministically and
// keeps ToGrid the inverse of ToPixel up to rounding.
func ToGrid(px Pixel, cellSize float64, layout Layout) Position {
	var guess Position
	if layout == Hex {
		row := int(math.Round(px.Y / (cellSize * 1.5)))
		col := int(math.Round(px.X/(cellSize*sqrt3) - 0.5*float64(row&1)))
		guess = Position{X: col, Y: row}
	} else {
		guess = Position{
			X: int(math.Floor(px.X / cellSize)),
			Y: int(math.Floor(px.Y / cellSize)),
		}
	}

	best := guess
	bestDist := math.Inf(1)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			candidate := guess.Shift(dx, dy)
			center := ToPixel(candidate, cellSize, layout)
			d := (center.X-px.X)*(center.X-px.X) + (center.Y-px.Y)*(center.Y-px.Y)
			if d < bestDist {
				best = candidate
				bestDist = d
			}
		}
	}
	return best
}
