package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// The numeric value of a ship type is its length.
type ShipType uint8

const (
	ShipTypeSubmarine  ShipType = 1
	ShipTypeDestroyer  ShipType = 2
	ShipTypeCruiser    ShipType = 3
	ShipTypeBattleship ShipType = 4
	ShipTypeCarrier    ShipType = 5
)

// Largest ships go first so the small ones fill the gaps.
var ShipTypesPlacementOrder = []ShipType{
	ShipTypeCarrier,
	ShipTypeBattleship,
	ShipTypeCruiser,
	ShipTypeDestroyer,
	ShipTypeSubmarine,
}

func ShipTypeFromLength(length int) (ShipType, error) {
	if length < int(ShipTypeSubmarine) || length > int(ShipTypeCarrier) {
		return 0, cerr.ErrUnknownShipLength(length)
	}
	return ShipType(length), nil
}

func (st ShipType) Length() int {
	return int(st)
}

func (st ShipType) String() string {
	switch st {
	case ShipTypeSubmarine:
		return "submarine"
	case ShipTypeDestroyer:
		return "destroyer"
	case ShipTypeCruiser:
		return "cruiser"
	case ShipTypeBattleship:
		return "battleship"
	case ShipTypeCarrier:
		return "carrier"
	}
	return "unknown"
}

// Number of ships requested per type
type Fleet map[ShipType]int

func (f Fleet) Total() int {
	var total int
	for _, count := range f {
		total += count
	}
	return total
}

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// footprint returns the cells of a ship of the given length starting at
// origin. Horizontal ships grow to the right, vertical ones downwards.
func footprint(origin Coordinates, length int, orientation Orientation) []Coordinates {
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		if orientation == OrientationHorizontal {
			cells = append(cells, NewCoordinates(origin.Row, origin.Col+i))
		} else {
			cells = append(cells, NewCoordinates(origin.Row+i, origin.Col))
		}
	}
	return cells
}

// PlaceShipAt commits a ship if every footprint cell is inside the
// grid and Empty, then fences it with Margin cells. Returns false and
// leaves the grid untouched otherwise.
func (g *Grid) PlaceShipAt(origin Coordinates, length int, orientation Orientation) bool {
	if length < 1 {
		return false
	}

	cells := footprint(origin, length, orientation)
	for _, c := range cells {
		if !g.InBounds(c.Row, c.Col) || g.truth[c.Row][c.Col] != CellStateEmpty {
			return false
		}
	}

	for _, c := range cells {
		g.setTruth(c, CellStateOccupied)
	}
	g.markMargin(cells)
	return true
}

func (g *Grid) markMargin(cells []Coordinates) {
	for _, c := range cells {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, col := c.Row+dr, c.Col+dc
				if !g.InBounds(r, col) || g.truth[r][col] == CellStateOccupied {
					continue
				}
				g.truth[r][col] = CellStateMargin
			}
		}
	}
}

// InferRun scans outward from c along its row and its column until a
// non-ship cell or the edge is met in each direction. The margin keeps
// distinct ships apart, so the contiguous run found is the ship. Cells
// are ordered top-left to bottom-right. Returns nil if c is not a ship
// cell.
func (g *Grid) InferRun(c Coordinates) []Coordinates {
	if !g.isShipCell(c.Row, c.Col) {
		return nil
	}

	left, right := c.Col, c.Col
	for g.isShipCell(c.Row, left-1) {
		left--
	}
	for g.isShipCell(c.Row, right+1) {
		right++
	}

	top, bottom := c.Row, c.Row
	for g.isShipCell(top-1, c.Col) {
		top--
	}
	for g.isShipCell(bottom+1, c.Col) {
		bottom++
	}

	// A straight ship grows along one axis only
	if right > left {
		run := make([]Coordinates, 0, right-left+1)
		for col := left; col <= right; col++ {
			run = append(run, NewCoordinates(c.Row, col))
		}
		return run
	}

	run := make([]Coordinates, 0, bottom-top+1)
	for row := top; row <= bottom; row++ {
		run = append(run, NewCoordinates(row, c.Col))
	}
	return run
}

// IsIsolated reports whether none of the orthogonal neighbours of c is a
// ship cell. An isolated ship cell is a submarine.
func (g *Grid) IsIsolated(c Coordinates) bool {
	return !g.isShipCell(c.Row-1, c.Col) &&
		!g.isShipCell(c.Row+1, c.Col) &&
		!g.isShipCell(c.Row, c.Col-1) &&
		!g.isShipCell(c.Row, c.Col+1)
}

func (g *Grid) countInRun(run []Coordinates, state CellState) int {
	var n int
	for _, c := range run {
		if g.truth[c.Row][c.Col] == state {
			n++
		}
	}
	return n
}
