package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		input    string
		want     Direction
		opposite Direction
	}{
		{"up", Up, Down},
		{"R", Right, Left},
		{" down ", Down, Up},
		{"l", Left, Right},
	}
	for _, test := range tests {
		d, err := ParseDirection(test.input)
		require.NoError(t, err)
		assert.Equal(t, test.want, d)
		assert.Equal(t, test.opposite, d.Opposite())
		assert.Equal(t, d, d.Opposite().Opposite())
	}

	_, err := ParseDirection("north")
	assert.ErrorIs(t, err, ErrUnknownDirection)

	assert.False(t, Direction(0).Valid())
	assert.False(t, (Up | Left).Valid())
	assert.Equal(t, Direction(0), Direction(32).Opposite())
	assert.Equal(t, "Direction(3)", (Up | Right).String())
}

func TestNeighbor(t *testing.T) {
	g := newGrid(Params{Width: 4, Height: 3})

	tests := []struct {
		index int
		d     Direction
		want  int
		ok    bool
	}{
		{0, Up, -1, false},
		{0, Left, -1, false},
		{0, Right, 1, true},
		{0, Down, 4, true},
		{3, Right, -1, false},
		{4, Left, -1, false},
		{7, Right, -1, false},
		{5, Up, 1, true},
		{9, Down, -1, false},
		{11, Left, 10, true},
	}
	for _, test := range tests {
		got, ok := g.Neighbor(test.index, test.d)
		assert.Equal(t, test.ok, ok, "%d %s", test.index, test.d)
		assert.Equal(t, test.want, got, "%d %s", test.index, test.d)
	}
}

func TestCoords(t *testing.T) {
	g := newGrid(Params{Width: 5, Height: 3})
	row, col := g.IndexToCoords(13)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)
	assert.Equal(t, 13, g.CoordsToIndex(row, col))
	assert.Equal(t, 14, g.Exit())
	assert.True(t, g.InBounds(2, 4))
	assert.False(t, g.InBounds(3, 0))
}

func TestSolution(t *testing.T) {
	g := corridorGrid()
	assert.Nil(t, g.Solution())

	g.Cells[6] |= Cell(Right)
	g.Cells[7] = Cell(Left | Right)
	g.Cells[8] = Cell(Left | Right)
	g.Cells[9] = Cell(Left | Right)
	assert.Equal(t, []int{0, 5, 6, 7, 8, 9}, g.Solution())
}

func TestRender(t *testing.T) {
	g := &Grid{Width: 2, Height: 1, Cells: []Cell{Cell(Left | Right), Cell(Left | Right)}}

	want := strings.Join([]string{
		"   +---+---+",
		"->   @      ->",
		"   +---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render([]int{0}, false))

	want = strings.Join([]string{
		"   +---+---+",
		"->   *   @  ->",
		"   +---+---+",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render([]int{0, 1}, true))
}

func TestRenderWalls(t *testing.T) {
	g := corridorGrid()
	lines := strings.Split(g.Render([]int{0, 5}, false), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "   +---+---+---+---+---+", lines[0])
	assert.Equal(t, "->   o |   |   |   |   |", lines[1])
	assert.Equal(t, "   +   +---+---+---+---+", lines[2])
	assert.Equal(t, "   | @     |   |   |   |", lines[3])
	assert.Equal(t, "   +---+---+---+---+---+", lines[4])
}
