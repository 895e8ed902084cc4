package maze

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

type MoveResult int

const (
	MoveIllegal MoveResult = iota
	MoveOK
	MoveFinished
)

// [MoveResult] implements [fmt.Stringer]
func (r MoveResult) String() string {
	switch r {
	case MoveIllegal:
		return "illegal"
	case MoveOK:
		return "ok"
	case MoveFinished:
		return "finished"
	}
	return fmt.Sprintf("MoveResult(%d)", int(r))
}

// Session drives one player through a sequence of mazes of fixed size. It
// owns the current grid and path; a regeneration replaces both at once.
// A Session is not safe for concurrent use.
type Session struct {
	params     Params
	rnd        *rand.Rand
	grid       *Grid
	tracker    *PathTracker
	finished   bool
	moves      int
	generation int

	// AllowMovesAfterFinish keeps accepting moves once the exit is reached.
	// The session stays finished either way.
	AllowMovesAfterFinish bool
}

func NewSession(params Params, r *rand.Rand) (*Session, error) {
	if r == nil {
		r = NewRand()
	}
	s := &Session{params: params, rnd: r}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate discards the current maze and path and starts over.
func (s *Session) Regenerate() error {
	grid, err := Generate(s.params, s.rnd)
	if err != nil {
		return err
	}
	s.grid = grid
	s.tracker = NewPathTracker(grid)
	s.finished = false
	s.moves = 0
	s.generation++
	return nil
}

// Move attempts a move and reports MoveFinished exactly once per maze, on the
// move that reaches the exit.
func (s *Session) Move(d Direction) MoveResult {
	if s.finished && !s.AllowMovesAfterFinish {
		return MoveIllegal
	}
	moved := s.tracker.AttemptMove(d)
	if moved {
		s.moves++
	}
	// a 1x1 maze starts on its exit and finishes on the first attempt
	if !s.finished && s.tracker.IsAtExit() {
		s.finished = true
		return MoveFinished
	}
	if moved {
		return MoveOK
	}
	return MoveIllegal
}

func (s *Session) Params() Params {
	return s.params
}

func (s *Session) Grid() *Grid {
	return s.grid
}

func (s *Session) Tracker() *PathTracker {
	return s.tracker
}

func (s *Session) Finished() bool {
	return s.finished
}

// Moves counts successful moves in the current maze, retreats included.
func (s *Session) Moves() int {
	return s.moves
}

// Generation is incremented on every regeneration.
func (s *Session) Generation() int {
	return s.generation
}

// Snapshot is a consistent copy of a session: cells and path always belong
// to the same generation.
type Snapshot struct {
	Width      int
	Height     int
	Cells      []Cell
	Path       []int
	Finished   bool
	Moves      int
	Generation int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:      s.grid.Width,
		Height:     s.grid.Height,
		Cells:      slices.Clone(s.grid.Cells),
		Path:       s.tracker.CurrentPath(),
		Finished:   s.finished,
		Moves:      s.moves,
		Generation: s.generation,
	}
}

func (s Snapshot) Grid() *Grid {
	return &Grid{Width: s.Width, Height: s.Height, Cells: s.Cells}
}

func (s Snapshot) Position() int {
	return s.Path[len(s.Path)-1]
}

func (s Snapshot) Render() string {
	return s.Grid().Render(s.Path, s.Finished)
}
