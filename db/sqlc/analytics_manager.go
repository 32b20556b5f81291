package sqlc

import (
	"context"
	"encoding/json"
	"net"

	"github.com/saeidalz13/battleship-solo/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps per-host game counters and the results of
// finished games.
type AnalyticsManager struct {
	queries Querier
	hostIp  pqtype.Inet
}

func NewAnalyticsManager(queries Querier, hostIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries: queries,
		hostIp:  pqtype.Inet{IPNet: hostIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) HostIp() pqtype.Inet {
	return a.hostIp
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context) error {
	return a.queries.IncrementGamesCreatedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) IncrementGamesFinishedCount(ctx context.Context) error {
	return a.queries.IncrementGamesFinishedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, a.hostIp)
}

func (a *AnalyticsManager) GetGamesFinishedCount(ctx context.Context) (int64, error) {
	return a.queries.GetGamesFinishedCount(ctx, a.hostIp)
}

// RecordGameFinished bumps the finished counter and stores the game's
// final tally together with the settings it was played with.
func (a *AnalyticsManager) RecordGameFinished(ctx context.Context, game *battleship.Game) (GameResult, error) {
	if err := a.queries.IncrementGamesFinishedCount(ctx, a.hostIp); err != nil {
		return GameResult{}, err
	}

	settings, err := json.Marshal(game.Settings())
	if err != nil {
		return GameResult{}, err
	}

	return a.queries.CreateGameResult(ctx, CreateGameResultParams{
		GameUuid:      game.Uuid(),
		HostIp:        a.hostIp,
		RowsCount:     int32(game.Grid().Rows()),
		ColsCount:     int32(game.Grid().Cols()),
		ShipsPlaced:   int32(game.ShipsPlaced()),
		Shots:         int32(game.Shots()),
		TorpedoesUsed: int32(game.TorpedoesUsed()),
		RecoveryMode:  game.Modes().Recovery,
		Settings:      pqtype.NullRawMessage{RawMessage: settings, Valid: true},
	})
}

func (a *AnalyticsManager) GetGameResult(ctx context.Context, gameUuid string) (GameResult, error) {
	return a.queries.GetGameResult(ctx, gameUuid)
}
