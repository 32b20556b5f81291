package battleship

import (
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Settings struct {
	Rows  int   `json:"rows"`
	Cols  int   `json:"cols"`
	Fleet Fleet `json:"fleet"`
}

// Validate rejects a configuration before any board is created.
func (s Settings) Validate() error {
	if !isValidDimension(s.Rows) || !isValidDimension(s.Cols) {
		return cerr.ErrGridDimensions(s.Rows, s.Cols)
	}

	for _, shipType := range ShipTypesPlacementOrder {
		if s.Fleet[shipType] < 0 {
			return cerr.ErrNegativeShipCount(shipType.String(), s.Fleet[shipType])
		}
	}

	if s.Fleet.Total() == 0 {
		return cerr.ErrZeroShips()
	}
	return nil
}

// Mode flags are set once per game, before the first shot.
type Modes struct {
	Recovery  bool `json:"recovery"`
	Torpedo   bool `json:"torpedo"`
	Torpedoes int  `json:"torpedoes"`
}

type Game struct {
	uuid        string
	isFinished  bool
	modesLocked bool
	shipsPlaced int
	settings    Settings
	modes       Modes
	grid        *Grid
	resolver    *Resolver
	player      *Player
	createdAt   time.Time
}

// newGame builds the grid and places the fleet. Settings must be
// validated already. Under-placement is left for the caller to detect.
func newGame(settings Settings, rng Rand) (*Game, error) {
	grid, err := NewGrid(settings.Rows, settings.Cols)
	if err != nil {
		return nil, err
	}

	game := &Game{
		uuid:      uuid.NewString()[:6],
		settings:  settings,
		grid:      grid,
		resolver:  NewResolver(grid, false),
		player:    NewPlayer(),
		createdAt: time.Now(),
	}
	game.shipsPlaced = NewPlacer(grid, rng).PlaceFleet(settings.Fleet)

	return game, nil
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Grid() *Grid {
	return g.grid
}

func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) Settings() Settings {
	return g.settings
}

func (g *Game) Modes() Modes {
	return g.modes
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

func (g *Game) ShipsRequested() int {
	return g.settings.Fleet.Total()
}

func (g *Game) ShipsPlaced() int {
	return g.shipsPlaced
}

func (g *Game) Shots() int {
	return g.player.Shots()
}

func (g *Game) Torpedoes() int {
	return g.player.Torpedoes()
}

func (g *Game) TorpedoesUsed() int {
	return g.player.TorpedoesUsed()
}

func (g *Game) HasRemainingShips() bool {
	return g.grid.HasRemainingShips()
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

// SetModes fixes the recovery and torpedo modes for the rest of the
// game. With torpedo mode on, the charges must be in 1..ShipsPlaced.
func (g *Game) SetModes(modes Modes) error {
	if g.modesLocked {
		return cerr.ErrModesAlreadySet(g.uuid)
	}

	if !modes.Torpedo {
		modes.Torpedoes = 0
	} else if modes.Torpedoes < 1 || modes.Torpedoes > g.shipsPlaced {
		return cerr.ErrTorpedoCount(modes.Torpedoes, g.shipsPlaced)
	}

	g.modes = modes
	g.modesLocked = true
	g.resolver = NewResolver(g.grid, modes.Recovery)
	g.player.setTorpedoes(modes.Torpedoes)
	return nil
}

// Fire resolves one shot and keeps the tally. A torpedo charge is taken
// before the shot and given back if the cell does not exist or was
// already struck. Neither of those counts as a shot.
func (g *Game) Fire(row, col int, weapon Weapon) (Outcome, error) {
	if g.isFinished {
		return Outcome{}, cerr.ErrGameIsFinished(g.uuid)
	}

	if weapon == WeaponTorpedo {
		if err := g.player.loadTorpedo(g.modes.Torpedo); err != nil {
			return Outcome{}, err
		}
	}

	outcome, err := g.resolver.Resolve(row, col, weapon)
	if err != nil {
		if weapon == WeaponTorpedo {
			g.player.refundTorpedo()
		}
		return Outcome{}, err
	}
	g.modesLocked = true

	if outcome.Kind == OutcomeAlreadyStruck {
		if weapon == WeaponTorpedo {
			g.player.refundTorpedo()
		}
		return outcome, nil
	}

	g.player.recordShot(outcome)
	if !g.grid.HasRemainingShips() {
		g.FinishGame()
	}

	return outcome, nil
}
