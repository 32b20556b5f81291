package battleship

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// Places a destroyer at (0,0)-(0,1) and a submarine at (4,4).
func newTestGame(t *testing.T) *Game {
	t.Helper()
	settings := Settings{Rows: 5, Cols: 5, Fleet: Fleet{ShipTypeDestroyer: 1, ShipTypeSubmarine: 1}}
	game, err := newGame(settings, &scriptedRand{values: []int{0, 0, 0, 4, 4, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if game.ShipsPlaced() != 2 {
		t.Fatalf("expected placed ships: %d\t got: %d", 2, game.ShipsPlaced())
	}
	return game
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		valid    bool
	}{
		{name: "one submarine", settings: Settings{Rows: 5, Cols: 5, Fleet: Fleet{ShipTypeSubmarine: 1}}, valid: true},
		{name: "full fleet", settings: Settings{Rows: 10, Cols: 10, Fleet: Fleet{ShipTypeCarrier: 1, ShipTypeBattleship: 2, ShipTypeSubmarine: 4}}, valid: true},
		{name: "zero ships", settings: Settings{Rows: 5, Cols: 5, Fleet: Fleet{ShipTypeCruiser: 0}}, valid: false},
		{name: "nil fleet", settings: Settings{Rows: 5, Cols: 5}, valid: false},
		{name: "negative count", settings: Settings{Rows: 5, Cols: 5, Fleet: Fleet{ShipTypeCruiser: -1, ShipTypeSubmarine: 2}}, valid: false},
		{name: "rows out of range", settings: Settings{Rows: 11, Cols: 5, Fleet: Fleet{ShipTypeSubmarine: 1}}, valid: false},
		{name: "cols out of range", settings: Settings{Rows: 5, Cols: 0, Fleet: Fleet{ShipTypeSubmarine: 1}}, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.settings.Validate()
			if test.valid && err != nil {
				t.Fatalf("expected valid settings\t got: %v", err)
			}
			if !test.valid && !errors.Is(err, cerr.ErrInvalidConfiguration) {
				t.Fatalf("expected invalid configuration\t got: %v", err)
			}
		})
	}
}

func TestSetModes(t *testing.T) {
	tests := []struct {
		name  string
		modes Modes
		valid bool
	}{
		{name: "no modes", modes: Modes{}, valid: true},
		{name: "recovery only", modes: Modes{Recovery: true}, valid: true},
		{name: "one torpedo", modes: Modes{Torpedo: true, Torpedoes: 1}, valid: true},
		{name: "torpedo per ship", modes: Modes{Torpedo: true, Torpedoes: 2}, valid: true},
		{name: "charges ignored when disabled", modes: Modes{Torpedo: false, Torpedoes: 9}, valid: true},
		{name: "zero torpedoes", modes: Modes{Torpedo: true, Torpedoes: 0}, valid: false},
		{name: "more torpedoes than ships", modes: Modes{Torpedo: true, Torpedoes: 3}, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := newTestGame(t)
			err := game.SetModes(test.modes)
			if !test.valid {
				if !errors.Is(err, cerr.ErrInvalidConfiguration) {
					t.Fatalf("expected invalid configuration\t got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			if game.Modes().Recovery != test.modes.Recovery {
				t.Fatal("recovery flag not applied")
			}
			if err := game.SetModes(test.modes); !errors.Is(err, cerr.ErrModesLocked) {
				t.Fatalf("expected modes locked\t got: %v", err)
			}
		})
	}
}

func TestFireLocksModes(t *testing.T) {
	game := newTestGame(t)
	if _, err := game.Fire(2, 2, WeaponNormal); err != nil {
		t.Fatal(err)
	}
	if err := game.SetModes(Modes{Recovery: true}); !errors.Is(err, cerr.ErrModesLocked) {
		t.Fatalf("expected modes locked\t got: %v", err)
	}
}

func TestFireTorpedoCharges(t *testing.T) {
	game := newTestGame(t)
	if err := game.SetModes(Modes{Torpedo: true, Torpedoes: 1}); err != nil {
		t.Fatal(err)
	}

	// Missing cell gives the charge back
	if _, err := game.Fire(7, 7, WeaponTorpedo); !errors.Is(err, cerr.ErrOutOfBounds) {
		t.Fatalf("expected out of bounds\t got: %v", err)
	}
	if game.Torpedoes() != 1 || game.Shots() != 0 {
		t.Fatalf("expected torpedoes: 1 shots: 0\t got: %d %d", game.Torpedoes(), game.Shots())
	}

	outcome, err := game.Fire(0, 1, WeaponTorpedo)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != OutcomeSunk || outcome.ShipLength != 2 {
		t.Fatalf("expected sunk destroyer\t got: %+v", outcome)
	}
	if game.Torpedoes() != 0 || game.Player().TorpedoesUsed() != 1 {
		t.Fatalf("expected torpedoes: 0 used: 1\t got: %d %d", game.Torpedoes(), game.Player().TorpedoesUsed())
	}

	if _, err := game.Fire(4, 4, WeaponTorpedo); !errors.Is(err, cerr.ErrNoTorpedoes) {
		t.Fatalf("expected no torpedoes\t got: %v", err)
	}
	if game.Shots() != 1 {
		t.Fatalf("expected shots: %d\t got: %d", 1, game.Shots())
	}
}

func TestFireTorpedoDisabled(t *testing.T) {
	game := newTestGame(t)
	if _, err := game.Fire(0, 0, WeaponTorpedo); !errors.Is(err, cerr.ErrNoTorpedoes) {
		t.Fatalf("expected no torpedoes\t got: %v", err)
	}
	if game.Shots() != 0 {
		t.Fatal("a refused torpedo is not a shot")
	}
}

func TestFireRepeatDoesNotCount(t *testing.T) {
	game := newTestGame(t)
	if err := game.SetModes(Modes{Torpedo: true, Torpedoes: 2}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name              string
		weapon            Weapon
		expectedKind      OutcomeKind
		expectedShots     int
		expectedTorpedoes int
	}{
		{name: "first hit", weapon: WeaponNormal, expectedKind: OutcomeHit, expectedShots: 1, expectedTorpedoes: 2},
		{name: "repeat", weapon: WeaponNormal, expectedKind: OutcomeAlreadyStruck, expectedShots: 1, expectedTorpedoes: 2},
		{name: "repeat with torpedo", weapon: WeaponTorpedo, expectedKind: OutcomeAlreadyStruck, expectedShots: 1, expectedTorpedoes: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome, err := game.Fire(0, 0, test.weapon)
			if err != nil {
				t.Fatal(err)
			}
			if outcome.Kind != test.expectedKind {
				t.Fatalf("expected outcome: %s\t got: %s", test.expectedKind, outcome.Kind)
			}
			if game.Shots() != test.expectedShots || game.Torpedoes() != test.expectedTorpedoes {
				t.Fatalf("expected shots: %d torpedoes: %d\t got: %d %d", test.expectedShots, test.expectedTorpedoes, game.Shots(), game.Torpedoes())
			}
		})
	}
}

func TestFireUntilFinished(t *testing.T) {
	game := newTestGame(t)

	shots := []Coordinates{{2, 2}, {0, 0}, {0, 1}, {4, 4}}
	for _, c := range shots {
		if game.IsFinished() {
			t.Fatal("game finished too early")
		}
		if _, err := game.Fire(c.Row, c.Col, WeaponNormal); err != nil {
			t.Fatal(err)
		}
	}

	if !game.IsFinished() || game.HasRemainingShips() {
		t.Fatal("game should be finished")
	}
	if game.Shots() != len(shots) {
		t.Fatalf("expected shots: %d\t got: %d", len(shots), game.Shots())
	}
	if game.Player().SunkenShips() != 2 {
		t.Fatalf("expected sunken ships: %d\t got: %d", 2, game.Player().SunkenShips())
	}
	if _, err := game.Fire(1, 1, WeaponNormal); !errors.Is(err, cerr.ErrGameFinished) {
		t.Fatalf("expected game finished\t got: %v", err)
	}
}
