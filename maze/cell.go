package maze

// CellKind classifies a cell for rendering.
type CellKind int

const (
	Wall       CellKind = iota // Wall is a non passable cell.
	Path                       // Path is a corridor cell not on the escape route.
	EscapePath                 // EscapePath is a corridor cell marked as part of the escape route.
)

// String returns the name of the kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case EscapePath:
		return "escape"
	default:
		return "unknown"
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Cell represents a single unit of a block maze grid.
// Its position is fixed at creation; the flags are mutated in place by the
// generator and the escape solver.
type Cell struct {
	pos      CellPosition
	passable bool // passable is true for corridor cells, false for walls.
	visited  bool // visited is shared by generation and solving, reset in between.
	escape   bool // escape is set only by the solver, on passable cells.
}

// Position returns the fixed position of the cell.
func (c *Cell) Position() CellPosition {
	return c.pos
}

// Passable returns true if the cell is part of a corridor.
func (c *Cell) Passable() bool {
	return c.passable
}

// Visited returns the visitation flag of the current phase.
func (c *Cell) Visited() bool {
	return c.visited
}

// Escape returns true if the cell lies on the marked escape route.
func (c *Cell) Escape() bool {
	return c.escape
}

// Kind returns the rendering classification of the cell.
func (c *Cell) Kind() CellKind {
	switch {
	case c.escape:
		return EscapePath
	case c.passable:
		return Path
	default:
		return Wall
	}
}

// SetPassable sets whether the cell is a corridor.
// Turning a cell into a wall also clears its escape mark.
func (c *Cell) SetPassable(passable bool) {
	c.passable = passable
	if !passable {
		c.escape = false
	}
}

// SetEscape marks or unmarks the cell as part of the escape route.
// Walls can never be marked.
func (c *Cell) SetEscape(escape bool) {
	c.escape = escape && c.passable
}

// markWall resolves the cell as a wall for the running phase.
func (c *Cell) markWall() {
	c.passable = false
	c.escape = false
	c.visited = true
}

// markPassage resolves the cell as a corridor for the running phase.
func (c *Cell) markPassage() {
	c.passable = true
	c.visited = true
}
