package battleship

type Weapon uint8

const (
	WeaponNormal Weapon = iota
	WeaponTorpedo
)

type OutcomeKind uint8

const (
	OutcomeMiss OutcomeKind = iota
	OutcomeAlreadyStruck
	OutcomeHit
	OutcomeSunk
)

func (ok OutcomeKind) String() string {
	switch ok {
	case OutcomeMiss:
		return "miss"
	case OutcomeAlreadyStruck:
		return "already struck"
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	}
	return "unknown"
}

// Outcome of a single shot. ShipLength and Cells are only set for
// OutcomeSunk.
type Outcome struct {
	Kind       OutcomeKind   `json:"kind"`
	Coords     Coordinates   `json:"coords"`
	ShipLength int           `json:"ship_length,omitempty"`
	Cells      []Coordinates `json:"cells,omitempty"`
}

func (o Outcome) ShipType() (ShipType, error) {
	return ShipTypeFromLength(o.ShipLength)
}

// Resolver applies shots to a grid. With recovery enabled it keeps a
// Ledger and rolls abandoned hits back before each shot.
type Resolver struct {
	grid     *Grid
	recovery bool
	ledger   *Ledger
}

func NewResolver(grid *Grid, recovery bool) *Resolver {
	return &Resolver{
		grid:     grid,
		recovery: recovery,
		ledger:   NewLedger(),
	}
}

func (r *Resolver) Ledger() *Ledger {
	return r.ledger
}

func (r *Resolver) IsRecovery() bool {
	return r.recovery
}

// Resolve fires at (row, col). An out of bounds coordinate returns an
// error and changes nothing.
func (r *Resolver) Resolve(row, col int, weapon Weapon) (Outcome, error) {
	state, err := r.grid.CellState(row, col)
	if err != nil {
		return Outcome{}, err
	}
	target := NewCoordinates(row, col)

	if r.recovery && r.ledger.ShouldRollBack(target, state) {
		r.ledger.RollBack(r.grid)
	}

	switch state {
	case CellStateEmpty, CellStateMargin:
		r.grid.setDisplay(target, DisplayStateMiss)
		if r.recovery {
			r.ledger.Clear()
		}
		return Outcome{Kind: OutcomeMiss, Coords: target}, nil

	case CellStateStruck:
		if r.recovery {
			r.ledger.Clear()
		}
		return Outcome{Kind: OutcomeAlreadyStruck, Coords: target}, nil
	}

	// Passing this line means an Occupied cell was hit
	if weapon == WeaponTorpedo {
		return r.torpedo(target), nil
	}
	return r.strike(target), nil
}

func (r *Resolver) strike(target Coordinates) Outcome {
	r.grid.setTruth(target, CellStateStruck)
	r.grid.setDisplay(target, DisplayStateHitMarker)

	run := r.grid.InferRun(target)
	if r.grid.countInRun(run, CellStateOccupied) > 0 {
		if r.recovery {
			r.ledger.Remember(target)
		}
		return Outcome{Kind: OutcomeHit, Coords: target}
	}

	return r.sink(target, run)
}

// torpedo sinks the whole ship at target whatever is left of it.
func (r *Resolver) torpedo(target Coordinates) Outcome {
	if r.grid.IsIsolated(target) {
		return r.sink(target, []Coordinates{target})
	}
	return r.sink(target, r.grid.InferRun(target))
}

func (r *Resolver) sink(target Coordinates, run []Coordinates) Outcome {
	for _, c := range run {
		r.grid.setTruth(c, CellStateStruck)
		r.grid.setDisplay(c, DisplayStateSunkMarker)
	}
	r.ledger.Clear()

	return Outcome{
		Kind:       OutcomeSunk,
		Coords:     target,
		ShipLength: len(run),
		Cells:      run,
	}
}
