package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type mark uint8

const (
	unvisited mark = iota
	opened
	closed
)

// carver holds the transient state of one generation: the open stack and the
// membership marks that realize the closed set. A cell is in at most one of
// them at any time.
type carver struct {
	grid  *Grid
	marks []mark
	stack []int
	r     *rand.Rand
}

// panics [AssertionError]
func (c *carver) push(index int) {
	if c.marks[index] != unvisited {
		panic(AssertionError{fmt.Sprintf("cell %d visited twice", index)})
	}
	c.marks[index] = opened
	c.stack = append(c.stack, index)
}

// panics [AssertionError]
func (c *carver) close() {
	last := len(c.stack) - 1
	top := c.stack[last]
	if c.marks[top] != opened {
		panic(AssertionError{fmt.Sprintf("cell %d closed while not open", top)})
	}
	c.stack = c.stack[:last]
	c.marks[top] = closed
}

func (c *carver) movable(current int, dirs *[4]Direction) (count int) {
	for _, d := range Directions {
		next, ok := c.grid.Neighbor(current, d)
		if !ok || c.grid.Cells[next] != 0 || c.marks[next] != unvisited {
			continue
		}
		dirs[count] = d
		count++
	}
	return
}

// step advances the search by one iteration: either carves toward a random
// unvisited neighbor of the most recent open cell or closes that cell.
func (c *carver) step() {
	var (
		current = c.stack[len(c.stack)-1]
		dirs    [4]Direction
		count   = c.movable(current, &dirs)
	)
	if count == 0 {
		c.close()
		return
	}

	d := dirs[c.r.IntN(count)]
	next, _ := c.grid.Neighbor(current, d)
	c.grid.Cells[current] |= Cell(d)
	c.grid.Cells[next] |= Cell(d.Opposite())
	c.push(next)
}

// Generate carves a perfect maze with randomized depth-first backtracking.
// The result is a spanning tree of the grid graph plus an entrance passage on
// the first cell (pointing left) and an exit passage on the last cell
// (pointing right). r may be nil, in which case a fresh generator is used.
func Generate(params Params, r *rand.Rand) (grid *Grid, err error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRand()
	}

	defer func() {
		if rec := recover(); rec != nil {
			var ae AssertionError
			if e, ok := rec.(error); ok && errors.As(e, &ae) {
				grid, err = nil, ae
				return
			}
			panic(rec)
		}
	}()

	n := params.CellCount()
	c := &carver{
		grid:  newGrid(params),
		marks: make([]mark, n),
		stack: make([]int, 0, n),
		r:     r,
	}

	start := r.IntN(n)
	c.push(start)

	iterations := 0
	for len(c.stack) > 0 {
		c.step()
		iterations++
	}

	// every cell is pushed once and popped once
	if iterations != 2*n-1 {
		panic(AssertionError{fmt.Sprintf("%d iterations for %d cells", iterations, n)})
	}

	grid = c.grid
	grid.Cells[grid.Entrance()] |= Cell(Left)
	grid.Cells[grid.Exit()] |= Cell(Right)

	Log.WithFields(logrus.Fields{
		"width":      params.Width,
		"height":     params.Height,
		"start":      start,
		"iterations": iterations,
	}).Debug("maze generated")

	return grid, nil
}
