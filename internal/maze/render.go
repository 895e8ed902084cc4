package maze

import "strings"

// Render draws the grid as text. Walked cells are marked with 'o' ('*' once
// finished) and the last path element with '@'.
func (g Grid) Render(path []int, finished bool) string {
	walked := make(map[int]struct{}, len(path))
	for _, i := range path {
		walked[i] = struct{}{}
	}
	current := -1
	if len(path) > 0 {
		current = path[len(path)-1]
	}

	var b strings.Builder

	b.WriteString("   +")
	for col := range g.Width {
		b.WriteString(horizontalWall(g.Cells[col].Has(Up)))
	}
	b.WriteString("\n")

	for row := range g.Height {
		if row == 0 && g.Cells[g.Entrance()].Has(Left) {
			b.WriteString("-> ")
		} else {
			b.WriteString("   ")
		}
		first := g.Cells[g.CoordsToIndex(row, 0)]
		b.WriteString(verticalWall(first.Has(Left)))
		for col := range g.Width {
			i := g.CoordsToIndex(row, col)
			_, seen := walked[i]
			switch {
			case i == current:
				b.WriteString(" @ ")
			case seen && finished:
				b.WriteString(" * ")
			case seen:
				b.WriteString(" o ")
			default:
				b.WriteString("   ")
			}
			b.WriteString(verticalWall(g.Cells[i].Has(Right)))
		}
		if row == g.Height-1 && g.Cells[g.Exit()].Has(Right) {
			b.WriteString("->")
		}
		b.WriteString("\n")

		b.WriteString("   +")
		for col := range g.Width {
			b.WriteString(horizontalWall(g.Cells[g.CoordsToIndex(row, col)].Has(Down)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func horizontalWall(open bool) string {
	if open {
		return "   +"
	}
	return "---+"
}

func verticalWall(open bool) string {
	if open {
		return " "
	}
	return "|"
}
