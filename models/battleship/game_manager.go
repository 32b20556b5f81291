package battleship

import (
	"sync"

	"github.com/rs/zerolog/log"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

const defaultMaxGames int = 10

type GameManager interface {
	CreateGame(settings Settings) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
}

type BattleshipGameManager struct {
	games    map[string]*Game
	rng      Rand
	maxGames int
	mu       sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

type Option func(*BattleshipGameManager) error

func NewBattleshipGameManager(optFuncs ...Option) *BattleshipGameManager {
	bgm := BattleshipGameManager{
		games:    make(map[string]*Game, defaultMaxGames),
		maxGames: defaultMaxGames,
	}
	for _, opt := range optFuncs {
		if err := opt(&bgm); err != nil {
			panic(err)
		}
	}
	if bgm.rng == nil {
		bgm.rng = NewRandSource(0)
	}

	return &bgm
}

func WithRandSource(rng Rand) Option {
	return func(bgm *BattleshipGameManager) error {
		bgm.rng = rng
		return nil
	}
}

func WithMaxGames(maxGames int) Option {
	return func(bgm *BattleshipGameManager) error {
		if maxGames < 1 {
			return cerr.ErrTooManyGames(maxGames)
		}
		bgm.maxGames = maxGames
		return nil
	}
}

// CreateGame validates the settings, builds the grid and places the
// fleet. If fewer ships landed than requested the game is discarded.
func (bgm *BattleshipGameManager) CreateGame(settings Settings) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	if len(bgm.games) >= bgm.maxGames {
		return nil, cerr.ErrTooManyGames(bgm.maxGames)
	}

	game, err := newGame(settings, bgm.rng)
	if err != nil {
		return nil, err
	}

	if game.ShipsPlaced() != game.ShipsRequested() {
		log.Debug().Int("requested", game.ShipsRequested()).Int("placed", game.ShipsPlaced()).Msg("game setup rejected")
		return nil, cerr.ErrShipsNotPlaced(game.ShipsRequested(), game.ShipsPlaced())
	}

	bgm.games[game.Uuid()] = game
	log.Info().Str("game", game.Uuid()).Int("rows", settings.Rows).Int("cols", settings.Cols).Int("ships", game.ShipsPlaced()).Msg("game created")
	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotFound(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	if _, prs := bgm.games[gameUuid]; !prs {
		return
	}
	delete(bgm.games, gameUuid)
	log.Info().Str("game", gameUuid).Msg("game terminated")
}

func (bgm *BattleshipGameManager) ActiveGames() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return len(bgm.games)
}
