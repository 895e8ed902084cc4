package maze

import "slices"

// PathTracker keeps the walked path from the entrance to the current cell.
// Consecutive elements are always adjacent and joined by a passage.
type PathTracker struct {
	grid *Grid
	path []int
}

func NewPathTracker(grid *Grid) *PathTracker {
	return &PathTracker{
		grid: grid,
		path: []int{grid.Entrance()},
	}
}

// AttemptMove moves the walker one cell in direction d and reports whether
// the move was legal. Stepping back onto the previous path cell removes the
// last element instead of appending. Illegal moves leave the path unchanged.
func (t *PathTracker) AttemptMove(d Direction) bool {
	last := t.path[len(t.path)-1]
	target, ok := t.grid.Passable(last, d)
	if !ok {
		return false
	}
	if n := len(t.path); n >= 2 && t.path[n-2] == target {
		t.path = t.path[:n-1]
		return true
	}
	t.path = append(t.path, target)
	return true
}

// CurrentPath returns a copy of the walked path.
func (t *PathTracker) CurrentPath() []int {
	return slices.Clone(t.path)
}

func (t *PathTracker) Position() int {
	return t.path[len(t.path)-1]
}

func (t *PathTracker) Len() int {
	return len(t.path)
}

func (t *PathTracker) IsAtExit() bool {
	return t.Position() == t.grid.Exit()
}
