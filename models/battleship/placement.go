package battleship

import (
	"math/rand/v2"

	"github.com/rs/zerolog/log"
)

const MaxPlacementAttempts int = 100

type PlacementResult uint8

const (
	PlacementFailed PlacementResult = iota
	PlacementSuccess
)

// Rand is the uniform source used to draw placement candidates.
// *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Creates a seeded source. Seed 0 means a random seed.
func NewRandSource(seed uint64) Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Placer puts ships on a grid by rejection sampling.
type Placer struct {
	grid *Grid
	rng  Rand
}

func NewPlacer(grid *Grid, rng Rand) *Placer {
	return &Placer{grid: grid, rng: rng}
}

// Place draws a random origin and orientation up to MaxPlacementAttempts
// times and commits the first candidate that fits. The caller detects
// under-placement by counting results.
func (p *Placer) Place(length int) PlacementResult {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		origin := NewCoordinates(p.rng.IntN(p.grid.Rows()), p.rng.IntN(p.grid.Cols()))
		orientation := Orientation(p.rng.IntN(2))

		if p.grid.PlaceShipAt(origin, length, orientation) {
			return PlacementSuccess
		}
	}

	log.Debug().Int("length", length).Int("attempts", MaxPlacementAttempts).Msg("ship placement exhausted")
	return PlacementFailed
}

// PlaceShips calls Place count times and returns how many ships landed.
func (p *Placer) PlaceShips(count, length int) int {
	var placed int
	for i := 0; i < count; i++ {
		if p.Place(length) == PlacementSuccess {
			placed++
		}
	}
	return placed
}

// PlaceFleet places every ship type in ShipTypesPlacementOrder and
// returns the total number placed.
func (p *Placer) PlaceFleet(fleet Fleet) int {
	var placed int
	for _, shipType := range ShipTypesPlacementOrder {
		placed += p.PlaceShips(fleet[shipType], shipType.Length())
	}
	return placed
}
