package maze

import (
	"fmt"
	"math/rand"
	"time"
)

var noPosition = CellPosition{Row: -1, Col: -1}

// Escape marks the unique route from the entrance to the exit.
//
// The walk keeps the cells committed so far on a path stack and the cells
// that offered more than one continuation on a crossroads stack. A dead end
// unwinds the path back to the latest crossroad, clearing the escape marks
// of the abandoned branch. Random choices at crossroads only change how much
// is explored; the marked route is always the same because the maze is a tree.
//
// Walls, corridors and the entrance/exit are left untouched. A nil rng is
// replaced with a time-seeded source.
func (m *Maze) Escape(rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m.resetSolverState()

	entrance, err := m.Entrance()
	if err != nil {
		return err
	}
	exit, err := m.Exit()
	if err != nil {
		return err
	}
	if err := m.verifyTree(entrance); err != nil {
		return err
	}

	var (
		pathStack  []CellPosition
		crossroads []CellPosition
		current    = entrance
		previous   = noPosition
		open       = make([]CellPosition, 0, len(Directions))
	)

	for current != exit {
		open = m.openNeighbors(current, previous, open[:0])
		cell := m.at(current)

		switch len(open) {
		case 1:
			crossroads = dropTop(crossroads, current)
			cell.visited = true
			cell.escape = true
			pathStack = append(pathStack, current)
			previous, current = current, open[0]

		case 0:
			cell.visited = true
			cell.escape = false
			crossroads = dropTop(crossroads, current)
			if len(crossroads) == 0 {
				return fmt.Errorf("%w: exit %v is unreachable from entrance %v", ErrMazeIntegrity, exit, entrance)
			}

			target := crossroads[len(crossroads)-1]
			for {
				if len(pathStack) == 0 {
					return fmt.Errorf("%w: crossroad %v missing from the walked path", ErrMazeIntegrity, target)
				}
				top := pathStack[len(pathStack)-1]
				pathStack = pathStack[:len(pathStack)-1]
				m.at(top).escape = false
				if top == target {
					break
				}
			}

			current, previous = target, noPosition
			if len(pathStack) > 0 {
				previous = pathStack[len(pathStack)-1]
			}

		default:
			if len(crossroads) == 0 || crossroads[len(crossroads)-1] != current {
				crossroads = append(crossroads, current)
			}
			cell.visited = true
			cell.escape = true
			pathStack = append(pathStack, current)

			next := open[rng.Intn(len(open))]
			for _, n := range open {
				if n == exit {
					next = exit
					break
				}
			}
			previous, current = current, next
		}
	}

	m.at(exit).visited = true
	m.at(exit).escape = true
	return nil
}

// resetSolverState clears escape marks and the visited flag of corridors so
// that generation-time visitation does not leak into solving.
func (m *Maze) resetSolverState() {
	for i := range m.cells {
		m.cells[i].escape = false
		if m.cells[i].passable {
			m.cells[i].visited = false
		}
	}
}

// openNeighbors appends the passable, unvisited neighbors of pos other than
// previous to dst.
func (m *Maze) openNeighbors(pos, previous CellPosition, dst []CellPosition) []CellPosition {
	for _, d := range Directions {
		n := CellPosition{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
		if n == previous || !m.InBound(n.Row, n.Col) {
			continue
		}
		if c := m.at(n); c.passable && !c.visited {
			dst = append(dst, n)
		}
	}
	return dst
}

// verifyTree checks that the corridors form a single tree: connected from the
// entrance and with exactly one edge less than cells.
func (m *Maze) verifyTree(entrance CellPosition) error {
	nodes, edges := 0, 0
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if !m.cells[row*m.cols+col].passable {
				continue
			}
			nodes++
			if m.passableAt(row, col+1) {
				edges++
			}
			if m.passableAt(row+1, col) {
				edges++
			}
		}
	}
	if edges != nodes-1 {
		return fmt.Errorf("%w: %d corridor cells joined by %d edges, corridors contain a loop", ErrMazeIntegrity, nodes, edges)
	}

	seen := make([]bool, len(m.cells))
	queue := []CellPosition{entrance}
	seen[m.index(entrance)] = true
	reached := 0
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		reached++
		for _, d := range Directions {
			n := CellPosition{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
			if !m.passableAt(n.Row, n.Col) || seen[m.index(n)] {
				continue
			}
			seen[m.index(n)] = true
			queue = append(queue, n)
		}
	}
	if reached != nodes {
		return fmt.Errorf("%w: %d of %d corridor cells reachable from entrance %v", ErrMazeIntegrity, reached, nodes, entrance)
	}
	return nil
}

// dropTop removes pos from the top of the crossroads stack if it is there.
func dropTop(crossroads []CellPosition, pos CellPosition) []CellPosition {
	if n := len(crossroads); n > 0 && crossroads[n-1] == pos {
		return crossroads[:n-1]
	}
	return crossroads
}
