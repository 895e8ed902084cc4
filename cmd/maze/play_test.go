package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/maze-server/internal/maze"
)

func newSession(t *testing.T, width, height int) *maze.Session {
	t.Helper()
	s, err := maze.NewSession(maze.Params{Width: width, Height: height}, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return s
}

func TestPlayTwoByOne(t *testing.T) {
	session := newSession(t, 2, 1)
	var out bytes.Buffer

	err := play(strings.NewReader("up\nr\nl\nr\nq\nr\n"), &out, session)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "Oops! You can't move that way!"))
	assert.Equal(t, 1, strings.Count(text, congratulations))
	assert.Contains(t, text, "->   *   @  ->")
	assert.True(t, session.Finished())
	assert.Equal(t, []int{0, 1}, session.Tracker().CurrentPath())
}

func TestPlayRegenerate(t *testing.T) {
	session := newSession(t, 2, 1)
	var out bytes.Buffer

	require.NoError(t, play(strings.NewReader("r\nn\nr\n"), &out, session))
	assert.Equal(t, 2, strings.Count(out.String(), congratulations))
	assert.Equal(t, 2, session.Generation())
}

func TestPlayUnknownCommand(t *testing.T) {
	session := newSession(t, 3, 3)
	var out bytes.Buffer

	require.NoError(t, play(strings.NewReader("jump\n\n"), &out, session))
	assert.Contains(t, out.String(), `Unknown command "jump"`)
	assert.Equal(t, []int{0}, session.Tracker().CurrentPath())
}

func TestPlaySolvesMaze(t *testing.T) {
	session := newSession(t, 8, 6)
	g := session.Grid()
	solution := g.Solution()

	var input strings.Builder
	for i := 1; i < len(solution); i++ {
		for _, d := range maze.Directions {
			if next, ok := g.Passable(solution[i-1], d); ok && next == solution[i] {
				input.WriteString(d.String() + "\n")
			}
		}
	}

	var out bytes.Buffer
	require.NoError(t, play(strings.NewReader(input.String()), &out, session))
	assert.NotContains(t, out.String(), "Oops")
	assert.Equal(t, 1, strings.Count(out.String(), congratulations))
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-width", "4", "-height", "7"})
	require.NoError(t, err)
	assert.Equal(t, 4, opts.width)
	assert.Equal(t, 7, opts.height)
	assert.False(t, opts.seeded)

	opts, err = parseOptions([]string{"-seed", "0"})
	require.NoError(t, err)
	assert.True(t, opts.seeded)
	assert.Equal(t, 10, opts.width)

	_, err = parseOptions([]string{"-width", "wide"})
	assert.Error(t, err)
}
