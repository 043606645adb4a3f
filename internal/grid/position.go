// Package grid implements coordinate geometry for the battle map:
// cell addressing, distance math for square and hexagonal layouts,
// pixel conversion, and range queries. All functions are pure; the
// package holds no state.
package grid

import "fmt"

// FeetPerCell is the 5e convention: one grid cell spans 5 feet.
const FeetPerCell = 5.0

// diagonalFeet is the flat-average cost of a diagonal step on a square
// grid (the alternating 5/10 sequence averaged).
const diagonalFeet = 7.5

// Layout selects the grid addressing scheme.
type Layout string

const (
	// Square is a 4-directional grid with discounted diagonals.
	Square Layout = "square"
	// Hex is a 6-directional grid using odd-r offset addressing.
	Hex Layout = "hex"
)

// Position addresses a single cell. Coordinates are only meaningful
// relative to a map's bounds; callers check containment explicitly
// rather than relying on clamping.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Shift returns a new Position displaced by (dx, dy) without mutating
// the receiver.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Key returns a stable string form suitable for set membership and
// map keys shared with hosts ("x,y").
func (p Position) Key() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Bounds is the rectangular extent of a map in cells.
type Bounds struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Contains reports whether p lies inside the map.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}
