package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareDistanceDiagonalDiscount(t *testing.T) {
	// Two diagonal steps average 7.5 ft each.
	assert.InDelta(t, 15.0, Distance(Position{0, 0}, Position{2, 2}, Square), 1e-9)
	assert.InDelta(t, 5.0, Distance(Position{0, 0}, Position{1, 0}, Square), 1e-9)
	// Mixed: 3 across, 1 up = 2 straight + 1 diagonal.
	assert.InDelta(t, 17.5, Distance(Position{0, 0}, Position{3, 1}, Square), 1e-9)
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]Position{
		{{0, 0}, {2, 2}},
		{{1, 7}, {4, 3}},
		{{5, 5}, {5, 5}},
		{{0, 3}, {6, 0}},
	}
	for _, layout := range []Layout{Square, Hex} {
		for _, pair := range pairs {
			assert.Equal(t, Distance(pair[0], pair[1], layout), Distance(pair[1], pair[0], layout),
				"distance must be symmetric for %v under %s", pair, layout)
		}
	}
}

func TestHexDistance(t *testing.T) {
	assert.Zero(t, Distance(Position{0, 0}, Position{0, 0}, Hex))
	// Adjacent hexes are one cell apart.
	assert.InDelta(t, 5.0, Distance(Position{0, 0}, Position{1, 0}, Hex), 1e-9)
	assert.InDelta(t, 5.0, Distance(Position{0, 0}, Position{0, 1}, Hex), 1e-9)

	// Triangle inequality over a sample of triples.
	points := []Position{{0, 0}, {3, 1}, {5, 4}, {2, 6}, {7, 2}}
	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				ab := Distance(a, b, Hex)
				bc := Distance(b, c, Hex)
				ac := Distance(a, c, Hex)
				assert.LessOrEqual(t, ac, ab+bc+1e-9)
			}
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	bounds := Bounds{Width: 9, Height: 9}
	for _, layout := range []Layout{Square, Hex} {
		for _, cellSize := range []float64{32, 50, 64} {
			for y := 0; y < bounds.Height; y++ {
				for x := 0; x < bounds.Width; x++ {
					p := Position{X: x, Y: y}
					got := ToGrid(ToPixel(p, cellSize, layout), cellSize, layout)
					assert.Equal(t, p, got, "round trip for %v under %s at size %v", p, layout, cellSize)
				}
			}
		}
	}
}

func TestToGridBoundaryPixels(t *testing.T) {
	// A pixel on the shared edge of two square cells resolves to a
	// deterministic nearest center, not an arbitrary cell.
	first := ToGrid(Pixel{X: 50, Y: 25}, 50, Square)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ToGrid(Pixel{X: 50, Y: 25}, 50, Square))
	}
}

func TestCellsWithinRange(t *testing.T) {
	bounds := Bounds{Width: 10, Height: 10}
	center := Position{5, 5}

	zero := CellsWithinRange(center, 0, bounds, Square)
	assert.Equal(t, []Position{center}, zero)

	cells := CellsWithinRange(center, 5, bounds, Square)
	// One straight step in each direction plus the diagonals cost 7.5,
	// so exactly the four orthogonal neighbors and the center qualify.
	assert.Len(t, cells, 5)
	for _, c := range cells {
		assert.LessOrEqual(t, Distance(center, c, Square), 5.0+1e-9)
	}

	// Clipping: a center on the map edge never yields off-map cells.
	edge := CellsWithinRange(Position{0, 0}, 10, bounds, Square)
	for _, c := range edge {
		assert.True(t, bounds.Contains(c))
	}
}
