package battleship

import "github.com/rs/zerolog/log"

// Ledger remembers the most recent hit whose ship is not sunk yet.
// It does not know which ship the coordinate belongs to.
type Ledger struct {
	pending    Coordinates
	hasPending bool
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Pending() (Coordinates, bool) {
	return l.pending, l.hasPending
}

func (l *Ledger) Remember(c Coordinates) {
	l.pending = c
	l.hasPending = true
}

func (l *Ledger) Clear() {
	l.pending = Coordinates{}
	l.hasPending = false
}

// ShouldRollBack decides whether a shot at target abandons the pending
// hit. targetState is the truth state of target before the shot.
// Misses and repeated shots always abandon it; a new hit abandons it
// unless it shares an edge with the pending coordinate.
func (l *Ledger) ShouldRollBack(target Coordinates, targetState CellState) bool {
	if !l.hasPending {
		return false
	}
	if targetState != CellStateOccupied {
		return true
	}
	return !target.IsOrthogonallyAdjacent(l.pending)
}

// RollBack restores the run of the pending coordinate to Occupied and
// blanks its display cells, then clears the ledger. A run with nothing
// left Occupied is a sunk ship and stays as it is. Returns the cells
// that were restored.
func (l *Ledger) RollBack(g *Grid) []Coordinates {
	if !l.hasPending {
		return nil
	}
	defer l.Clear()

	run := g.InferRun(l.pending)
	if len(run) == 0 || g.countInRun(run, CellStateOccupied) == 0 {
		return nil
	}

	restored := make([]Coordinates, 0, len(run))
	for _, c := range run {
		if g.truth[c.Row][c.Col] == CellStateStruck {
			g.setTruth(c, CellStateOccupied)
			restored = append(restored, c)
		}
		g.setDisplay(c, DisplayStateBlank)
	}

	log.Debug().Int("row", l.pending.Row).Int("col", l.pending.Col).Int("restored", len(restored)).Msg("pending hit rolled back")
	return restored
}
