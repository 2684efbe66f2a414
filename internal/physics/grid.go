package physics

import (
	"iter"
	"math"
)

// Grid buckets item indices by center position over a bounded playfield,
// so a collision pass only tests items in neighboring cells.
//
// The cell size must be at least the largest center distance (per axis) at
// which two items can still touch. Positions off the playfield land in the
// nearest edge cell.
type Grid struct {
	inv        float64 // 1 / cell size
	cols, rows int
	buckets    [][]int // row-major, reused across frames
}

// NewGrid covers a width x height playfield with square cells.
func NewGrid(width, height, cellSize float64) *Grid {
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)
	return &Grid{
		inv:     1 / cellSize,
		cols:    cols,
		rows:    rows,
		buckets: make([][]int, cols*rows),
	}
}

// Reset empties every bucket, keeping their storage.
func (g *Grid) Reset() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// Insert files index under the cell containing (x, y).
func (g *Grid) Insert(x, y float64, index int) {
	col, row := g.cell(x, y)
	k := row*g.cols + col
	g.buckets[k] = append(g.buckets[k], index)
}

// Near yields the indices filed in the 3x3 block of cells around (x, y).
func (g *Grid) Near(x, y float64) iter.Seq[int] {
	return func(yield func(int) bool) {
		col, row := g.cell(x, y)
		for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
			for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
				for _, index := range g.buckets[r*g.cols+c] {
					if !yield(index) {
						return
					}
				}
			}
		}
	}
}

func (g *Grid) cell(x, y float64) (col, row int) {
	col = min(max(int(math.Floor(x*g.inv)), 0), g.cols-1)
	row = min(max(int(math.Floor(y*g.inv)), 0), g.rows-1)
	return col, row
}
