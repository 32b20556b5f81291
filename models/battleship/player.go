package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// Player keeps the tallies that belong to the person firing: shots
// taken, torpedo charges and sunk ships. The grid engine never reads
// them.
type Player struct {
	shots         int
	torpedoes     int
	torpedoesUsed int
	sunkenShips   int
}

func NewPlayer() *Player {
	return &Player{}
}

func (p *Player) Shots() int {
	return p.shots
}

func (p *Player) Torpedoes() int {
	return p.torpedoes
}

func (p *Player) TorpedoesUsed() int {
	return p.torpedoesUsed
}

func (p *Player) SunkenShips() int {
	return p.sunkenShips
}

func (p *Player) HasTorpedoes() bool {
	return p.torpedoes > 0
}

func (p *Player) setTorpedoes(torpedoes int) {
	p.torpedoes = torpedoes
}

// Takes one charge out of the pool before the shot is resolved.
func (p *Player) loadTorpedo(torpedoMode bool) error {
	if !torpedoMode || p.torpedoes < 1 {
		return cerr.ErrTorpedoUnavailable(torpedoMode)
	}
	p.torpedoes--
	p.torpedoesUsed++
	return nil
}

// Puts the charge back when the shot never happened.
func (p *Player) refundTorpedo() {
	p.torpedoes++
	p.torpedoesUsed--
}

func (p *Player) recordShot(outcome Outcome) {
	p.shots++
	if outcome.Kind == OutcomeSunk {
		p.sunkenShips++
	}
}
