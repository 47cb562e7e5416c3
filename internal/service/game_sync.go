package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/metrics"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// GameSyncResult tallies one game ingestion run.
type GameSyncResult struct {
	Fetched int
	Skipped int
	Written int
	Failed  int
}

// SyncGames fetches the league schedule for each season and inserts the
// games worth ingesting. All-star and exhibition games are skipped, as is
// any game whose home or away team is missing from the synced roster.
// Re-running leaves already-present games untouched.
func (s *Service) SyncGames(ctx context.Context, sportID int, seasons SeasonRange) (GameSyncResult, error) {
	start := time.Now()
	defer metrics.ObserveStage("games", start)

	slog := logger.NewSyncLogger(s.log, "games", sportID)

	rosterIDs, err := s.repos.Team.ListMLBIDs(ctx, sportID)
	if err != nil {
		return GameSyncResult{}, fmt.Errorf("listing team roster: %w", err)
	}
	roster := make(map[int64]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		roster[id] = struct{}{}
	}

	var res GameSyncResult
	for _, season := range seasons.Seasons() {
		scheduled, err := s.api.Schedule(ctx, sportID, season)
		if err != nil {
			metrics.FetchErrorsTotal.WithLabelValues("schedule").Inc()
			return res, fmt.Errorf("fetching schedule for season %d: %w", season, err)
		}
		res.Fetched += len(scheduled)

		var batch []models.Game
		seasonFailed := 0
		for _, sg := range scheduled {
			game := scheduleGameToGame(sg, sportID, season)
			if !game.IsIngestible() {
				res.Skipped++
				continue
			}
			if _, ok := roster[game.HomeTeamMLBID]; !ok {
				res.Skipped++
				continue
			}
			if _, ok := roster[game.AwayTeamMLBID]; !ok {
				res.Skipped++
				continue
			}
			if err := s.validator.Validate(game); err != nil {
				res.Failed++
				seasonFailed++
				slog.WithField("mlb_id", game.MLBID).WithError(err).Warn("Validation failed, skipping game")
				continue
			}
			batch = append(batch, game)
		}

		if err := s.repos.Game.BulkInsert(ctx, batch); err != nil {
			return res, fmt.Errorf("writing games for season %d: %w", season, err)
		}
		res.Written += len(batch)
		slog.LogSeasonSummary(season, len(scheduled), len(batch), seasonFailed)
	}

	metrics.EntitiesInsertedTotal.WithLabelValues("game").Add(float64(res.Written))
	metrics.ValidationFailuresTotal.WithLabelValues("game").Add(float64(res.Failed))

	slog.WithFields(map[string]any{
		"fetched": res.Fetched,
		"skipped": res.Skipped,
		"written": res.Written,
		"failed":  res.Failed,
	}).Info("Sync complete")
	return res, nil
}

func scheduleGameToGame(sg statsapi.ScheduleGame, sportID, season int) models.Game {
	return models.Game{
		MLBID:         sg.GamePk,
		SportID:       sportID,
		GameDate:      parseAPIDate(sg.OfficialDate),
		GameType:      sg.GameType,
		Season:        season,
		HomeTeamMLBID: sg.Teams.Home.Team.ID,
		AwayTeamMLBID: sg.Teams.Away.Team.ID,
		Details:       sg.Raw,
	}
}
