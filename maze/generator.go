package maze

import "math/rand"

// generate carves corridors into a freshly initialized grid with an
// iterative randomized depth-first search.
func (m *Maze) generate(rng *rand.Rand) {
	stack := newFrontier(len(m.cells))

	// Entrance rows are odd so the border respects the pillar lattice.
	entrance := CellPosition{Row: rng.Intn((m.rows-1)/2)*2 + 1, Col: 0}
	stack.Push(m.index(entrance))

	candidates := make([]int, 0, len(Directions))
	for stack.Len() > 0 {
		idx, _ := stack.Pop()
		current := m.position(idx)
		cell := m.at(current)
		if cell.visited {
			continue
		}

		if m.closesLoop(current) {
			cell.markWall()
			continue
		}

		cell.markPassage()
		if current.Col == m.cols-1 {
			m.sealExitColumn(current, stack)
		}

		candidates = candidates[:0]
		for _, d := range Directions {
			n := CellPosition{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if !m.carvable(n) || m.at(n).visited {
				continue
			}

			nIdx := m.index(n)
			if m.touchesPassage(n, current) {
				m.at(n).markWall()
				stack.Remove(nIdx)
				continue
			}

			candidates = append(candidates, nIdx)
			stack.Push(nIdx)
		}

		if len(candidates) > 0 {
			stack.MoveToTop(candidates[rng.Intn(len(candidates))])
		}
	}
}

// carvable reports whether the generator may consider the position: interior
// rows, and any column but the first. The last column is open so that the
// walk can break through to an exit.
func (m *Maze) carvable(pos CellPosition) bool {
	return pos.Row >= 1 && pos.Row <= m.rows-2 && pos.Col >= 1 && pos.Col <= m.cols-1
}

// closesLoop reports whether opening pos would join two corridors lying on
// opposite sides of it.
func (m *Maze) closesLoop(pos CellPosition) bool {
	horizontal := m.passableAt(pos.Row, pos.Col-1) && m.passableAt(pos.Row, pos.Col+1)
	vertical := m.passableAt(pos.Row-1, pos.Col) && m.passableAt(pos.Row+1, pos.Col)
	return horizontal || vertical
}

// touchesPassage reports whether pos has a passable neighbor other than from.
func (m *Maze) touchesPassage(pos, from CellPosition) bool {
	for _, d := range Directions {
		n := CellPosition{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if n != from && m.passableAt(n.Row, n.Col) {
			return true
		}
	}
	return false
}

// sealExitColumn walls every last-column cell except the exit.
func (m *Maze) sealExitColumn(exit CellPosition, stack *frontier) {
	for row := 0; row < m.rows; row++ {
		if row == exit.Row {
			continue
		}
		pos := CellPosition{Row: row, Col: m.cols - 1}
		m.at(pos).markWall()
		stack.Remove(m.index(pos))
	}
}
