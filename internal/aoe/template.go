// Package aoe computes the cell sets covered by area-of-effect
// templates. Templates are pure geometry: they know nothing about
// obstacles or line of sight, and callers compose them with the board
// package's LineOfSight when blocking terrain should interrupt an
// effect. Templates are ephemeral targeting aids and are never
// persisted.
package aoe

import (
	"math"
	"sort"

	"github.com/10thony/campaignion-engine/internal/grid"
)

// Shape selects the template geometry.
type Shape string

const (
	Sphere Shape = "sphere"
	Cube   Shape = "cube"
	Cone   Shape = "cone"
	Line   Shape = "line"
)

// geomEpsilon absorbs float error on boundary cells so that a cell at
// exactly the template radius is always included.
const geomEpsilon = 1e-9

// Template describes one area of effect. Size is in grid units (cells,
// 5 ft each); Direction is radians with 0 pointing toward increasing
// x, so the zero value aims a cone or line "east". Thickness applies
// to lines only: the number of extra cells on each side of the ray.
type Template struct {
	Shape     Shape
	Size      float64
	Center    grid.Position
	Direction float64
	Thickness int
	Layout    grid.Layout
}

// Cells returns every in-bounds cell the template covers, sorted by
// row then column. The result is deterministic for identical inputs.
func (t Template) Cells(bounds grid.Bounds) []grid.Position {
	covered := make(map[grid.Position]struct{})
	switch t.Shape {
	case Sphere:
		t.scanRadial(bounds, covered, math.Pi)
	case Cube:
		t.scanCube(bounds, covered)
	case Cone:
		t.scanRadial(bounds, covered, t.coneHalfAngle())
	case Line:
		t.traceLine(bounds, covered)
	}

	cells := make([]grid.Position, 0, len(covered))
	for p := range covered {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// coneHalfAngle is ±45° on square layouts and ±60° on hex layouts,
// matching the wider natural sector of a six-neighbor grid.
func (t Template) coneHalfAngle() float64 {
	if t.Layout == grid.Hex {
		return math.Pi / 3
	}
	return math.Pi / 4
}

// scanRadial collects cells whose center lies within the continuous
// Euclidean radius Size of the template center, restricted to the
// angular sector ±halfAngle around Direction. A half angle of π is an
// unrestricted sphere. The center cell always qualifies.
func (t Template) scanRadial(bounds grid.Bounds, covered map[grid.Position]struct{}, halfAngle float64) {
	origin := unitCenter(t.Center, t.Layout)
	window := int(t.Size) + 2
	for y := t.Center.Y - window; y <= t.Center.Y+window; y++ {
		for x := t.Center.X - window; x <= t.Center.X+window; x++ {
			p := grid.Position{X: x, Y: y}
			if !bounds.Contains(p) {
				continue
			}
			c := unitCenter(p, t.Layout)
			dx, dy := c.X-origin.X, c.Y-origin.Y
			if math.Hypot(dx, dy) > t.Size+geomEpsilon {
				continue
			}
			if p != t.Center && !withinSector(dx, dy, t.Direction, halfAngle) {
				continue
			}
			covered[p] = struct{}{}
		}
	}
}

// scanCube collects the axis-aligned square of half-width Size around
// the center. Hex maps get the same offset-coordinate square, which is
// what a square marker dropped on a hex map selects.
func (t Template) scanCube(bounds grid.Bounds, covered map[grid.Position]struct{}) {
	half := int(t.Size)
	for y := t.Center.Y - half; y <= t.Center.Y+half; y++ {
		for x := t.Center.X - half; x <= t.Center.X+half; x++ {
			p := grid.Position{X: x, Y: y}
			if bounds.Contains(p) {
				covered[p] = struct{}{}
			}
		}
	}
}

// traceLine walks the ray from the center along Direction for Size
// cell-lengths, adding Thickness cells on each side perpendicular to
// the ray. Sampling at half-cell increments keeps oblique rays free of
// gaps; the map deduplicates revisited cells.
func (t Template) traceLine(bounds grid.Bounds, covered map[grid.Position]struct{}) {
	origin := unitCenter(t.Center, t.Layout)
	dirX, dirY := math.Cos(t.Direction), math.Sin(t.Direction)
	perpX, perpY := -dirY, dirX

	samples := int(t.Size*2) + 1
	for i := 0; i <= samples; i++ {
		dist := math.Min(float64(i)*0.5, t.Size)
		for k := -t.Thickness; k <= t.Thickness; k++ {
			px := origin.X + dist*dirX + float64(k)*perpX
			py := origin.Y + dist*dirY + float64(k)*perpY
			p := cellAt(px, py, t.Layout)
			if bounds.Contains(p) {
				covered[p] = struct{}{}
			}
		}
	}
}

// withinSector reports whether the vector (dx, dy) falls inside the
// angular sector ±halfAngle around direction.
func withinSector(dx, dy, direction, halfAngle float64) bool {
	diff := math.Atan2(dy, dx) - direction
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return math.Abs(diff) <= halfAngle+geomEpsilon
}

// unitCenter returns the cell's center in a space where adjacent cell
// centers are one unit apart on both layouts. For hexes that means a
// circumradius of 1/sqrt(3), which puts neighboring pointy-top centers
// exactly one unit from each other.
func unitCenter(p grid.Position, layout grid.Layout) grid.Pixel {
	if layout == grid.Hex {
		return grid.ToPixel(p, 1/math.Sqrt(3), layout)
	}
	px := grid.ToPixel(p, 1, layout)
	// Shift so the cell at (0,0) sits at the origin of template space.
	return grid.Pixel{X: px.X - 0.5, Y: px.Y - 0.5}
}

// cellAt inverts unitCenter for a point in template space.
func cellAt(x, y float64, layout grid.Layout) grid.Position {
	if layout == grid.Hex {
		return grid.ToGrid(grid.Pixel{X: x, Y: y}, 1/math.Sqrt(3), layout)
	}
	return grid.ToGrid(grid.Pixel{X: x + 0.5, Y: y + 0.5}, 1, layout)
}
