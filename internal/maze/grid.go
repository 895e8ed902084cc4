package maze

import (
	"fmt"
	"math"
)

type Params struct {
	Width  int
	Height int
}

func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Width > math.MaxInt/p.Height {
		return fmt.Errorf("%w: %dx%d overflows cell count", ErrInvalidDimensions, p.Width, p.Height)
	}
	return nil
}

func (p Params) CellCount() int {
	return p.Width * p.Height
}

// Grid is the connectivity grid of a maze: one passage mask per cell, row-major.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

func newGrid(p Params) *Grid {
	return &Grid{
		Width:  p.Width,
		Height: p.Height,
		Cells:  make([]Cell, p.CellCount()),
	}
}

func (g Grid) Params() Params {
	return Params{Width: g.Width, Height: g.Height}
}

func (g Grid) Len() int {
	return len(g.Cells)
}

func (g Grid) Entrance() int {
	return 0
}

func (g Grid) Exit() int {
	return len(g.Cells) - 1
}

func (g Grid) IndexToCoords(index int) (row int, col int) {
	return index / g.Width, index % g.Width
}

func (g Grid) CoordsToIndex(row int, col int) int {
	return row*g.Width + col
}

func (g Grid) InBounds(row, col int) bool {
	return 0 <= row && row < g.Height && 0 <= col && col < g.Width
}

// Neighbor returns the cell adjacent to index in direction d. Rows do not
// wrap around.
func (g Grid) Neighbor(index int, d Direction) (int, bool) {
	row, col := g.IndexToCoords(index)
	switch d {
	case Up:
		row--
	case Right:
		col++
	case Down:
		row++
	case Left:
		col--
	default:
		return -1, false
	}
	if !g.InBounds(row, col) {
		return -1, false
	}
	return g.CoordsToIndex(row, col), true
}

// Passable reports whether a passage leads from index to an in-grid neighbor.
func (g Grid) Passable(index int, d Direction) (int, bool) {
	if index < 0 || index >= len(g.Cells) || !g.Cells[index].Has(d) {
		return -1, false
	}
	return g.Neighbor(index, d)
}

// Edges counts internal passages, each undirected pair once. Entrance and
// exit bits point off the grid and are not counted.
func (g Grid) Edges() int {
	edges := 0
	for i, c := range g.Cells {
		for _, d := range [2]Direction{Right, Down} {
			if _, ok := g.Neighbor(i, d); ok && c.Has(d) {
				edges++
			}
		}
	}
	return edges
}

// Solution returns the shortest path from the entrance to the exit, or nil if
// the exit cannot be reached.
func (g Grid) Solution() []int {
	if len(g.Cells) == 0 {
		return nil
	}
	parents := make([]int, len(g.Cells))
	for i := range parents {
		parents[i] = -1
	}
	start, end := g.Entrance(), g.Exit()
	parents[start] = start
	queue := []int{start}
	for len(queue) > 0 && parents[end] < 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next, ok := g.Passable(current, d)
			if !ok || parents[next] >= 0 {
				continue
			}
			parents[next] = current
			queue = append(queue, next)
		}
	}
	if parents[end] < 0 {
		return nil
	}

	var reversed []int
	for i := end; i != start; i = parents[i] {
		reversed = append(reversed, i)
	}
	reversed = append(reversed, start)

	path := make([]int, len(reversed))
	for i, index := range reversed {
		path[len(reversed)-1-i] = index
	}
	return path
}
