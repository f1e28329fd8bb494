package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLayout is returned when a textual layout cannot be parsed into a maze.
var ErrMalformedLayout = errors.New("malformed maze layout")

// Symbols maps each cell kind to the rune used to draw it.
type Symbols struct {
	Wall   rune
	Path   rune
	Escape rune
}

// DefaultSymbols draws walls as '#', corridors as ' ' and the escape route as '.'.
var DefaultSymbols = Symbols{Wall: '#', Path: ' ', Escape: '.'}

// Symbol returns the rune for the given cell kind.
func (s Symbols) Symbol(kind CellKind) rune {
	switch kind {
	case Path:
		return s.Path
	case EscapePath:
		return s.Escape
	default:
		return s.Wall
	}
}

func (s Symbols) kind(r rune) (CellKind, bool) {
	switch r {
	case s.Wall:
		return Wall, true
	case s.Path:
		return Path, true
	case s.Escape:
		return EscapePath, true
	default:
		return Wall, false
	}
}

// Lines renders the grid one string per row.
func (m *Maze) Lines(s Symbols) []string {
	lines := make([]string, m.rows)
	var b strings.Builder
	for row := 0; row < m.rows; row++ {
		b.Reset()
		for col := 0; col < m.cols; col++ {
			b.WriteRune(s.Symbol(m.cells[row*m.cols+col].Kind()))
		}
		lines[row] = b.String()
	}
	return lines
}

// Render draws the grid with the given symbols, one line per row.
func (m *Maze) Render(s Symbols) string {
	return strings.Join(m.Lines(s), "\n") + "\n"
}

// String provides a textual representation of the maze using DefaultSymbols.
func (m *Maze) String() string {
	return m.Render(DefaultSymbols)
}

// Parse builds a maze from rendered lines without running generation.
// Every line must have the same number of runes and use only the given symbols.
func Parse(lines []string, s Symbols) (*Maze, error) {
	if s.Wall == s.Path || s.Wall == s.Escape || s.Path == s.Escape {
		return nil, fmt.Errorf("%w: symbols must be distinct", ErrMalformedLayout)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedLayout)
	}

	rows, cols := len(lines), len([]rune(lines[0]))
	cells := make([]Cell, 0, rows*cols)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLayout, row, len(runes), cols)
		}
		for col, r := range runes {
			kind, ok := s.kind(r)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at %d,%d", ErrMalformedLayout, r, row, col)
			}
			cells = append(cells, Cell{
				passable: kind != Wall,
				escape:   kind == EscapePath,
			})
		}
	}

	return FromCells(rows, cols, cells)
}
