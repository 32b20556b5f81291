package battleship

import "testing"

func TestLedgerShouldRollBack(t *testing.T) {
	ledger := NewLedger()
	if ledger.ShouldRollBack(NewCoordinates(0, 0), CellStateEmpty) {
		t.Fatal("nothing to roll back without a pending hit")
	}

	ledger.Remember(NewCoordinates(2, 2))

	tests := []struct {
		name     string
		target   Coordinates
		state    CellState
		expected bool
	}{
		{name: "miss on empty", target: NewCoordinates(2, 3), state: CellStateEmpty, expected: true},
		{name: "miss on margin", target: NewCoordinates(1, 1), state: CellStateMargin, expected: true},
		{name: "repeated shot", target: NewCoordinates(2, 2), state: CellStateStruck, expected: true},
		{name: "hit to the right", target: NewCoordinates(2, 3), state: CellStateOccupied, expected: false},
		{name: "hit to the left", target: NewCoordinates(2, 1), state: CellStateOccupied, expected: false},
		{name: "hit above", target: NewCoordinates(1, 2), state: CellStateOccupied, expected: false},
		{name: "hit below", target: NewCoordinates(3, 2), state: CellStateOccupied, expected: false},
		{name: "hit on diagonal", target: NewCoordinates(3, 3), state: CellStateOccupied, expected: true},
		{name: "hit two cells away", target: NewCoordinates(2, 4), state: CellStateOccupied, expected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ledger.ShouldRollBack(test.target, test.state); got != test.expected {
				t.Fatalf("expected rollback: %t\t got: %t", test.expected, got)
			}
		})
	}
}

func TestLedgerRollBackRestoresRun(t *testing.T) {
	grid := mustNewGrid(t, 5, 5)
	mustPlace(t, grid, 1, 1, 3, OrientationHorizontal)
	resolver := NewResolver(grid, true)

	fireShots(t, resolver, []shot{
		{row: 1, col: 1, kind: OutcomeHit},
		{row: 1, col: 2, kind: OutcomeHit},
	})

	restored := resolver.Ledger().RollBack(grid)
	if len(restored) != 2 {
		t.Fatalf("expected restored cells: %d\t got: %d", 2, len(restored))
	}
	for col := 1; col <= 3; col++ {
		assertCell(t, grid, 1, col, CellStateOccupied, DisplayStateBlank)
	}
	if _, ok := resolver.Ledger().Pending(); ok {
		t.Fatal("rollback must clear the pending hit")
	}
}

func TestLedgerNeverRollsBackSunkShip(t *testing.T) {
	grid := mustNewGrid(t, 5, 5)
	mustPlace(t, grid, 0, 0, 2, OrientationHorizontal)
	resolver := NewResolver(grid, true)

	fireShots(t, resolver, []shot{
		{row: 0, col: 0, kind: OutcomeHit},
		{row: 0, col: 1, kind: OutcomeSunk, shipLength: 2},
	})

	ledger := NewLedger()
	ledger.Remember(NewCoordinates(0, 0))
	if restored := ledger.RollBack(grid); len(restored) != 0 {
		t.Fatalf("sunk ship must not be restored\t got: %+v", restored)
	}
	assertCell(t, grid, 0, 0, CellStateStruck, DisplayStateSunkMarker)
	assertCell(t, grid, 0, 1, CellStateStruck, DisplayStateSunkMarker)
}

// Board: destroyer (0,0)-(0,1), destroyer (3,0)-(3,1), submarine (3,4)
func TestRecoveryMode(t *testing.T) {
	tests := []struct {
		name  string
		shots []shot
	}{
		{
			name: "miss rolls back the pending hit",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 2, col: 2, kind: OutcomeMiss},
				{row: 0, col: 0, kind: OutcomeHit},
			},
		},
		{
			name: "adjacent hit keeps the thread and sinks",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 0, col: 1, kind: OutcomeSunk, shipLength: 2},
				{row: 2, col: 2, kind: OutcomeMiss},
				{row: 0, col: 0, kind: OutcomeAlreadyStruck},
			},
		},
		{
			name: "repeated shot rolls back",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 0, col: 0, kind: OutcomeAlreadyStruck},
				{row: 0, col: 0, kind: OutcomeHit},
			},
		},
		{
			name: "hit on another ship rolls back",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 3, col: 0, kind: OutcomeHit},
				{row: 0, col: 1, kind: OutcomeHit},
				{row: 0, col: 0, kind: OutcomeSunk, shipLength: 2},
			},
		},
		{
			name: "sinking another ship rolls back",
			shots: []shot{
				{row: 3, col: 1, kind: OutcomeHit},
				{row: 3, col: 4, kind: OutcomeSunk, shipLength: 1},
				{row: 3, col: 0, kind: OutcomeHit},
			},
		},
		{
			name: "torpedo on another ship rolls back",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 3, col: 1, weapon: WeaponTorpedo, kind: OutcomeSunk, shipLength: 2},
				{row: 0, col: 1, kind: OutcomeHit},
			},
		},
		{
			name: "torpedo next to pending hit sinks the ship",
			shots: []shot{
				{row: 0, col: 0, kind: OutcomeHit},
				{row: 0, col: 1, weapon: WeaponTorpedo, kind: OutcomeSunk, shipLength: 2},
				{row: 4, col: 4, kind: OutcomeMiss},
				{row: 0, col: 0, kind: OutcomeAlreadyStruck},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid := mustNewGrid(t, 5, 5)
			mustPlace(t, grid, 0, 0, 2, OrientationHorizontal)
			mustPlace(t, grid, 3, 0, 2, OrientationHorizontal)
			mustPlace(t, grid, 3, 4, 1, OrientationHorizontal)
			fireShots(t, NewResolver(grid, true), test.shots)
		})
	}
}

func TestRecoveryRollbackRestoresCell(t *testing.T) {
	grid := mustNewGrid(t, 5, 5)
	mustPlace(t, grid, 0, 0, 2, OrientationHorizontal)
	resolver := NewResolver(grid, true)

	fireShots(t, resolver, []shot{{row: 0, col: 0, kind: OutcomeHit}})
	assertCell(t, grid, 0, 0, CellStateStruck, DisplayStateHitMarker)

	fireShots(t, resolver, []shot{{row: 2, col: 2, kind: OutcomeMiss}})
	assertCell(t, grid, 0, 0, CellStateOccupied, DisplayStateBlank)
	assertCell(t, grid, 2, 2, CellStateEmpty, DisplayStateMiss)
}

func TestRecoveryKeepsSunkShips(t *testing.T) {
	grid := mustNewGrid(t, 5, 5)
	mustPlace(t, grid, 0, 0, 2, OrientationHorizontal)
	mustPlace(t, grid, 3, 0, 2, OrientationHorizontal)
	resolver := NewResolver(grid, true)

	fireShots(t, resolver, []shot{
		{row: 0, col: 0, kind: OutcomeHit},
		{row: 0, col: 1, kind: OutcomeSunk, shipLength: 2},
		{row: 3, col: 0, kind: OutcomeHit},
		{row: 4, col: 4, kind: OutcomeMiss},
	})

	assertCell(t, grid, 0, 0, CellStateStruck, DisplayStateSunkMarker)
	assertCell(t, grid, 0, 1, CellStateStruck, DisplayStateSunkMarker)
	assertCell(t, grid, 3, 0, CellStateOccupied, DisplayStateBlank)
}
