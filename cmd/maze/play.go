package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/maze-server/internal/maze"
)

const (
	help = `  Type u, d, l or r (or up, down, left, right) and press Enter to move.
  Type n for a new maze.
  Type q to quit.
`
	oops            = "\n  Oops! You can't move that way!\n"
	congratulations = "Congratulations! You found the way out!\n"
)

func draw(out io.Writer, session *maze.Session) {
	snapshot := session.Snapshot()
	fmt.Fprint(out, "\n", snapshot.Render(), "\n", help)
}

// play runs the interactive loop until q or the end of input. Moves are
// ignored once the exit is reached; n starts over.
func play(in io.Reader, out io.Writer, session *maze.Session) error {
	draw(out, session)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "":
			continue
		case "q", "quit":
			return nil
		case "n", "new":
			if err := session.Regenerate(); err != nil {
				return err
			}
			draw(out, session)
			continue
		}

		d, err := maze.ParseDirection(input)
		if err != nil {
			fmt.Fprintf(out, "\n  Unknown command %q.\n%s", input, help)
			continue
		}
		if session.Finished() {
			continue
		}
		switch session.Move(d) {
		case maze.MoveIllegal:
			fmt.Fprint(out, oops)
		case maze.MoveOK:
			draw(out, session)
		case maze.MoveFinished:
			draw(out, session)
			fmt.Fprint(out, congratulations)
		}
	}
	return scanner.Err()
}
