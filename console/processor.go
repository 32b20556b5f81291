package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/saeidalz13/battleship-solo/models/battleship"
)

// Analytics receives game statistics. Failures never stop a game.
type Analytics interface {
	IncrementGamesCreatedCount(ctx context.Context) error
	RecordGameFinished(ctx context.Context, game *battleship.Game) (sqlc.GameResult, error)
}

var _ Analytics = (*sqlc.AnalyticsManager)(nil)

// Processor drives one console session: the main menu, game setup and
// the turn loop of every game played in it.
type Processor struct {
	prompter    *Prompter
	gameManager battleship.GameManager
	analytics   Analytics
}

type Option func(*Processor) error

func NewProcessor(in io.Reader, out io.Writer, gameManager battleship.GameManager, optFuncs ...Option) *Processor {
	p := Processor{
		prompter:    NewPrompter(in, out),
		gameManager: gameManager,
	}
	for _, opt := range optFuncs {
		if err := opt(&p); err != nil {
			panic(err)
		}
	}

	return &p
}

func WithAnalytics(analytics Analytics) Option {
	return func(p *Processor) error {
		if analytics == nil {
			return errors.New("analytics cannot be nil")
		}
		p.analytics = analytics
		return nil
	}
}

// Run shows the main menu until the player quits. It returns an error
// wrapping cerr.ErrInputClosed when the input ends first.
func (p *Processor) Run(ctx context.Context) error {
	p.prompter.Println(msgWelcome)

menuLoop:
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		option, err := p.prompter.ReadInt(promptMenu, isOption)
		if err != nil {
			return err
		}

		switch option {
		case OptionStartGame:
			if err := p.playGame(ctx); err != nil {
				return err
			}

		case OptionQuit:
			p.prompter.Println(msgBye)
			break menuLoop
		}
	}

	return nil
}

func (p *Processor) playGame(ctx context.Context) error {
	settings, err := p.readSettings()
	if err != nil {
		return err
	}

	game, err := p.gameManager.CreateGame(settings)
	if err != nil {
		switch {
		case errors.Is(err, cerr.ErrPlacementExhausted):
			p.prompter.Println(msgUnableToArrange)
		case errors.Is(err, cerr.ErrInvalidConfiguration) && settings.Fleet.Total() == 0:
			p.prompter.Println(msgZeroShips)
		default:
			return err
		}
		return nil
	}
	defer p.gameManager.TerminateGame(game.Uuid())
	p.recordGameCreated(ctx)

	modes, err := p.readModes(game.ShipsPlaced())
	if err != nil {
		return err
	}
	if err := game.SetModes(modes); err != nil {
		return err
	}

	if err := p.playTurns(ctx, game); err != nil {
		return err
	}

	p.prompter.Printf(msgWon+"\n\n", game.Shots())
	log.Info().Str("game", game.Uuid()).Int("shots", game.Shots()).Msg("game finished")
	p.recordGameFinished(ctx, game)
	return nil
}

func (p *Processor) readSettings() (battleship.Settings, error) {
	dimensionValid := inRange(battleship.GridMinSize, battleship.GridMaxSize)

	rows, err := p.prompter.ReadInt(fmt.Sprintf(promptGridDimension, "rows"), dimensionValid)
	if err != nil {
		return battleship.Settings{}, err
	}
	cols, err := p.prompter.ReadInt(fmt.Sprintf(promptGridDimension, "columns"), dimensionValid)
	if err != nil {
		return battleship.Settings{}, err
	}

	fleet := make(battleship.Fleet, len(battleship.ShipTypesPlacementOrder))
	for _, shipType := range battleship.ShipTypesPlacementOrder {
		count, err := p.prompter.ReadInt(fmt.Sprintf(promptShipCount, shipType), isNonNegative)
		if err != nil {
			return battleship.Settings{}, err
		}
		fleet[shipType] = count
	}

	return battleship.Settings{Rows: rows, Cols: cols, Fleet: fleet}, nil
}

func (p *Processor) readModes(shipsPlaced int) (battleship.Modes, error) {
	var modes battleship.Modes

	recovery, err := p.prompter.ReadInt(promptRecoveryMode, isOption)
	if err != nil {
		return modes, err
	}
	modes.Recovery = recovery == OptionYes

	torpedo, err := p.prompter.ReadInt(promptTorpedoMode, isOption)
	if err != nil {
		return modes, err
	}
	if torpedo != OptionYes {
		return modes, nil
	}

	torpedoes, err := p.prompter.ReadInt(promptTorpedoCount, inRange(1, shipsPlaced))
	if err != nil {
		return modes, err
	}
	modes.Torpedo = true
	modes.Torpedoes = torpedoes

	return modes, nil
}

func (p *Processor) playTurns(ctx context.Context, game *battleship.Game) error {
	p.prompter.Println(RenderBoard(game.Grid().DisplayBoard()))

turnLoop:
	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		weapon := battleship.WeaponNormal
		if game.Player().HasTorpedoes() {
			choice, err := p.prompter.ReadInt(promptUseTorpedo, isOption)
			if err != nil {
				return err
			}
			if choice == OptionYes {
				weapon = battleship.WeaponTorpedo
			}
		}

		row, err := p.prompter.ReadInt(fmt.Sprintf(promptFiringCell, "Row index"), isNonNegative)
		if err != nil {
			return err
		}
		col, err := p.prompter.ReadInt(fmt.Sprintf(promptFiringCell, "Column index"), isNonNegative)
		if err != nil {
			return err
		}

		outcome, err := game.Fire(row, col, weapon)
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) {
				p.prompter.Println(msgCellDoesNotExist)
				continue turnLoop
			}
			return err
		}

		p.printOutcome(outcome)
		p.prompter.Println(RenderBoard(game.Grid().DisplayBoard()))
	}

	return nil
}

func (p *Processor) printOutcome(outcome battleship.Outcome) {
	switch outcome.Kind {
	case battleship.OutcomeMiss:
		p.prompter.Println(msgMiss)
	case battleship.OutcomeHit:
		p.prompter.Println(msgHit)
	case battleship.OutcomeAlreadyStruck:
		p.prompter.Println(msgAlreadyHit)
	case battleship.OutcomeSunk:
		shipType, err := outcome.ShipType()
		if err != nil {
			log.Error().Err(err).Int("length", outcome.ShipLength).Msg("sunk run matches no ship type")
			p.prompter.Println(msgHit)
			return
		}
		p.prompter.Println(fmt.Sprintf(msgSunk, shipType))
	}
}

func (p *Processor) recordGameCreated(ctx context.Context) {
	if p.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := p.analytics.IncrementGamesCreatedCount(ctx); err != nil {
		// for now not killing the game for it
		log.Error().Err(err).Msg("failed to increment games created")
	}
}

func (p *Processor) recordGameFinished(ctx context.Context, game *battleship.Game) {
	if p.analytics == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()
	result, err := p.analytics.RecordGameFinished(ctx, game)
	if err != nil {
		log.Error().Err(err).Str("game", game.Uuid()).Msg("failed to record game result")
		return
	}
	log.Debug().Int64("id", result.ID).Str("game", result.GameUuid).Msg("game result stored")
}
