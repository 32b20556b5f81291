package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-solo/console"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/urfave/cli/v3"
)

const (
	flagSeed        = "seed"
	flagDatabaseUrl = "database-url"
	flagMigrations  = "migrations"
	flagLogLevel    = "log-level"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "dev"
	}
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdin, os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("battleship exited")
	}
}

func newCommand(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "battleship",
		Usage: "single player battleship in the terminal",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:    flagSeed,
				Usage:   "seed for ship placement, 0 picks a random one",
				Sources: cli.EnvVars("BATTLESHIP_SEED"),
			},
			&cli.StringFlag{
				Name:    flagDatabaseUrl,
				Usage:   "postgres url for game analytics, empty disables them",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    flagMigrations,
				Value:   "file://db/migration",
				Usage:   "source url of the database migrations",
				Sources: cli.EnvVars("MIGRATIONS_DIR"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   zerolog.LevelInfoValue,
				Usage:   "trace, debug, info, warn, error or disabled",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := setupLogger(cmd.String(flagLogLevel)); err != nil {
				return err
			}

			gameManager := battleship.NewBattleshipGameManager(
				battleship.WithRandSource(battleship.NewRandSource(cmd.Uint64(flagSeed))),
				battleship.WithMaxGames(1),
			)

			var optFuncs []console.Option
			if psqlUrl := cmd.String(flagDatabaseUrl); psqlUrl != "" {
				conn := db.MustConnectToDb(psqlUrl, cmd.String(flagMigrations))
				defer conn.Close()

				dbManager := sqlc.NewDbManager(sqlc.New(conn), internal.HostIpNet())
				optFuncs = append(optFuncs, console.WithAnalytics(dbManager.Analytics))
			} else {
				log.Debug().Msg("no database url, analytics disabled")
			}

			err := console.NewProcessor(in, out, gameManager, optFuncs...).Run(ctx)
			if errors.Is(err, cerr.ErrInputClosed) {
				log.Info().Msg("input closed, leaving")
				return nil
			}
			return err
		},
	}
}

// Logs go to stderr so stdout only carries the game.
func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	return nil
}
