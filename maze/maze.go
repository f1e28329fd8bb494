/*
Package maze provides tools for creating and solving rectangular block mazes.

A block maze stores walls as cells: the grid is a lattice where every cell with
both coordinates even is a wall, and corridors are carved between those pillars.
Mazes are generated with an iterative, randomized depth-first search and are
perfect: the passable cells form a tree, so exactly one simple path joins the
entrance on the left border to the exit on the right border.

Escape marks that path with a backtracking walk that classifies each cell as a
one-way step, a crossroad or a dead end.

Randomness is injected as a *rand.Rand so that generation and solving can be
reproduced from a seed.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	minDimension = 5

	// MaxDimension bounds both maze dimensions so the explicit generation and
	// solving stacks stay small.
	MaxDimension = 1001
)

var (
	// ErrInvalidDimensions is returned when a maze cannot hold an entrance row or an interior.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// ErrMazeIntegrity is returned when the solver is given a maze that is not a perfect maze.
	ErrMazeIntegrity = errors.New("maze integrity violated")
)

// Direction is an orthogonal step on the grid.
type Direction struct {
	Name string
	Row  int
	Col  int
}

// Directions lists the orthogonal steps in the order neighbors are enumerated.
// The order is fixed so that a seeded generator reproduces the same maze.
var Directions = [4]Direction{
	{Name: "North", Row: -1, Col: 0},
	{Name: "South", Row: 1, Col: 0},
	{Name: "East", Row: 0, Col: 1},
	{Name: "West", Row: 0, Col: -1},
}

// Maze is a rectangular block maze. Cells live in a flat arena addressed by
// row*cols+col; neighbors are found by coordinate arithmetic.
type Maze struct {
	rows  int    // Number of rows of the grid
	cols  int    // Number of columns of the grid
	cells []Cell // Row-major cell arena
}

// New initializes a grid of the given dimensions and carves a perfect maze into it.
// A nil rng is replaced with a time-seeded source.
func New(rows, cols int, rng *rand.Rand) (*Maze, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := newGrid(rows, cols)
	m.generate(rng)
	return m, nil
}

// FromCells builds a maze around a pre-built, row-major cell slice without
// running generation. The cells are copied and their positions reassigned.
func FromCells(rows, cols int, cells []Cell) (*Maze, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidDimensions, len(cells), rows, cols)
	}

	m := &Maze{rows: rows, cols: cols, cells: make([]Cell, len(cells))}
	copy(m.cells, cells)
	for i := range m.cells {
		m.cells[i].pos = CellPosition{Row: i / cols, Col: i % cols}
		if !m.cells[i].passable {
			m.cells[i].escape = false
		}
	}
	return m, nil
}

func validateDimensions(rows, cols int) error {
	if min(rows, cols) < minDimension || max(rows, cols) > MaxDimension {
		return fmt.Errorf("%w: %dx%d, each side must be within [%d, %d]", ErrInvalidDimensions, rows, cols, minDimension, MaxDimension)
	}
	return nil
}

// newGrid lays out the raw lattice: border and even/even cells are walls,
// everything else is left undetermined. Lattice walls are recorded as visited
// so the generator never considers them.
func newGrid(rows, cols int) *Maze {
	m := &Maze{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := &m.cells[row*cols+col]
			c.pos = CellPosition{Row: row, Col: col}
			if row%2 == 0 && col%2 == 0 {
				c.visited = true
			}
		}
	}
	return m
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.cols
}

// InBound reports whether the position lies on the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Cell returns the cell at the given position, or nil when out of bounds.
// The returned pointer aliases the maze grid.
func (m *Maze) Cell(row, col int) *Cell {
	if !m.InBound(row, col) {
		return nil
	}
	return &m.cells[row*m.cols+col]
}

func (m *Maze) at(pos CellPosition) *Cell {
	return &m.cells[pos.Row*m.cols+pos.Col]
}

func (m *Maze) index(pos CellPosition) int {
	return pos.Row*m.cols + pos.Col
}

func (m *Maze) position(idx int) CellPosition {
	return CellPosition{Row: idx / m.cols, Col: idx % m.cols}
}

// passableAt reports whether an in-bound cell at the position is a corridor.
func (m *Maze) passableAt(row, col int) bool {
	return m.InBound(row, col) && m.cells[row*m.cols+col].passable
}

// CopyOf returns a new maze owning a deep copy of the grid.
func (m *Maze) CopyOf() *Maze {
	cells := make([]Cell, len(m.cells))
	copy(cells, m.cells)
	return &Maze{rows: m.rows, cols: m.cols, cells: cells}
}

// Entrance returns the position of the passable cell on the first column.
func (m *Maze) Entrance() (CellPosition, error) {
	return m.borderOpening(0, "entrance")
}

// Exit returns the position of the passable cell on the last column.
func (m *Maze) Exit() (CellPosition, error) {
	return m.borderOpening(m.cols-1, "exit")
}

func (m *Maze) borderOpening(col int, name string) (CellPosition, error) {
	var found []CellPosition
	for row := 0; row < m.rows; row++ {
		if m.cells[row*m.cols+col].passable {
			found = append(found, CellPosition{Row: row, Col: col})
		}
	}
	switch len(found) {
	case 0:
		return CellPosition{}, fmt.Errorf("%w: no %s on column %d", ErrMazeIntegrity, name, col)
	case 1:
		return found[0], nil
	default:
		return CellPosition{}, fmt.Errorf("%w: %d candidate %ss on column %d", ErrMazeIntegrity, len(found), name, col)
	}
}

// EscapeRoute returns the escape-marked cells ordered from entrance to exit.
// It is empty until Escape has run.
func (m *Maze) EscapeRoute() []CellPosition {
	entrance, err := m.Entrance()
	if err != nil || !m.at(entrance).escape {
		return nil
	}

	route := []CellPosition{entrance}
	prev, cur := CellPosition{Row: -1, Col: -1}, entrance
	for len(route) < len(m.cells) {
		next, ok := CellPosition{}, false
		for _, d := range Directions {
			n := CellPosition{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if n == prev || !m.InBound(n.Row, n.Col) || !m.at(n).escape {
				continue
			}
			next, ok = n, true
			break
		}
		if !ok {
			return route
		}
		route = append(route, next)
		prev, cur = cur, next
	}
	return route
}

// PassableCount returns the number of corridor cells.
func (m *Maze) PassableCount() int {
	count := 0
	for i := range m.cells {
		if m.cells[i].passable {
			count++
		}
	}
	return count
}
