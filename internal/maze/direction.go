package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a single passage bit of a [Cell].
type Direction uint8

const (
	Up    Direction = 1
	Right Direction = 1 << 1
	Down  Direction = 1 << 2
	Left  Direction = 1 << 3
)

// Directions lists every valid direction in bit order.
var Directions = [4]Direction{Up, Right, Down, Left}

var opposite = map[Direction]Direction{
	Up:    Down,
	Right: Left,
	Down:  Up,
	Left:  Right,
}

var ErrUnknownDirection = errors.New("unknown direction")

func (d Direction) Valid() bool {
	_, ok := opposite[d]
	return ok
}

// Opposite returns 0 for an invalid direction.
func (d Direction) Opposite() Direction {
	return opposite[d]
}

// [Direction] implements [fmt.Stringer]
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts full names and their first letters, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "r", "right":
		return Right, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Cell is the passage mask of one grid position: a set bit means there is a
// passage from this cell toward that direction.
type Cell uint8

func (c Cell) Has(d Direction) bool {
	return d.Valid() && c&Cell(d) != 0
}
