package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const (
	GridMinSize int = 1
	GridMaxSize int = 10
)

// Truth board states. A sunk ship is never stored as its own
// state; it is a run with no Occupied cell left.
type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateMargin
	CellStateOccupied
	CellStateStruck
)

func (cs CellState) IsShip() bool {
	return cs == CellStateOccupied || cs == CellStateStruck
}

func (cs CellState) String() string {
	switch cs {
	case CellStateEmpty:
		return "empty"
	case CellStateMargin:
		return "margin"
	case CellStateOccupied:
		return "occupied"
	case CellStateStruck:
		return "struck"
	}
	return "unknown"
}

// What the player sees
type DisplayState uint8

const (
	DisplayStateBlank DisplayState = iota
	DisplayStateMiss
	DisplayStateHitMarker
	DisplayStateSunkMarker
)

type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// IsOrthogonallyAdjacent reports whether c and other share an edge.
func (c Coordinates) IsOrthogonallyAdjacent(other Coordinates) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Grid owns the truth board and the display board of one game.
// Both boards are indexed [row][col].
type Grid struct {
	rows    int
	cols    int
	truth   [][]CellState
	display [][]DisplayState
}

// Creates a new grid. All truth cells are Empty
// and all display cells are Blank.
func NewGrid(rows, cols int) (*Grid, error) {
	if !isValidDimension(rows) || !isValidDimension(cols) {
		return nil, cerr.ErrGridDimensions(rows, cols)
	}

	truth := make([][]CellState, rows)
	display := make([][]DisplayState, rows)
	for i := 0; i < rows; i++ {
		truth[i] = make([]CellState, cols)
		display[i] = make([]DisplayState, cols)
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		truth:   truth,
		display: display,
	}, nil
}

func isValidDimension(size int) bool {
	return size >= GridMinSize && size <= GridMaxSize
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) CellState(row, col int) (CellState, error) {
	if !g.InBounds(row, col) {
		return CellStateEmpty, cerr.ErrCellOutOfBounds(row, col)
	}
	return g.truth[row][col], nil
}

func (g *Grid) SetCellState(row, col int, state CellState) error {
	if !g.InBounds(row, col) {
		return cerr.ErrCellOutOfBounds(row, col)
	}
	g.truth[row][col] = state
	return nil
}

func (g *Grid) DisplayState(row, col int) (DisplayState, error) {
	if !g.InBounds(row, col) {
		return DisplayStateBlank, cerr.ErrCellOutOfBounds(row, col)
	}
	return g.display[row][col], nil
}

func (g *Grid) SetDisplayState(row, col int, state DisplayState) error {
	if !g.InBounds(row, col) {
		return cerr.ErrCellOutOfBounds(row, col)
	}
	g.display[row][col] = state
	return nil
}

// HasRemainingShips is true iff at least one cell is Occupied.
func (g *Grid) HasRemainingShips() bool {
	for _, row := range g.truth {
		for _, state := range row {
			if state == CellStateOccupied {
				return true
			}
		}
	}
	return false
}

func (g *Grid) Count(state CellState) int {
	var n int
	for _, row := range g.truth {
		for _, cs := range row {
			if cs == state {
				n++
			}
		}
	}
	return n
}

// Returns a copy of the display board for renderers.
func (g *Grid) DisplayBoard() [][]DisplayState {
	board := make([][]DisplayState, g.rows)
	for i := range g.display {
		board[i] = make([]DisplayState, g.cols)
		copy(board[i], g.display[i])
	}
	return board
}

// off-board cells count as non-ship
func (g *Grid) isShipCell(row, col int) bool {
	return g.InBounds(row, col) && g.truth[row][col].IsShip()
}

func (g *Grid) setTruth(c Coordinates, state CellState) {
	g.truth[c.Row][c.Col] = state
}

func (g *Grid) setDisplay(c Coordinates, state DisplayState) {
	g.display[c.Row][c.Col] = state
}
