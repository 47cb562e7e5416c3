package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/metrics"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/pbp"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// DeriveResult tallies one derivation run (at-bats or pitches).
type DeriveResult struct {
	Source  int
	Skipped int
	Written int
	Failed  int
}

// LoadAtBats reconstructs at-bats from the staged raw plays of each season.
// The id lookup maps are built once per season and handed to the
// reconstructor; plays with no pitch events are skipped, and a record that
// fails validation is dropped without touching the rest of the batch.
func (s *Service) LoadAtBats(ctx context.Context, sportID int, seasons SeasonRange) (DeriveResult, error) {
	start := time.Now()
	defer metrics.ObserveStage("at_bats", start)

	slog := logger.NewSyncLogger(s.log, "at_bats", sportID)

	players, err := s.repos.Player.ListIDMap(ctx)
	if err != nil {
		return DeriveResult{}, fmt.Errorf("listing players: %w", err)
	}

	var res DeriveResult
	for _, season := range seasons.Seasons() {
		games, err := s.repos.Game.ListIDMap(ctx, sportID, season)
		if err != nil {
			return res, fmt.Errorf("listing games for season %d: %w", season, err)
		}
		ids := pbp.IDMaps{Games: games, Players: players}

		raws, err := s.repos.Play.ListBySeason(ctx, sportID, season)
		if err != nil {
			return res, fmt.Errorf("listing plays for season %d: %w", season, err)
		}
		res.Source += len(raws)

		var batch []models.AtBat
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := s.repos.AtBat.BulkInsert(ctx, batch); err != nil {
				return fmt.Errorf("writing at-bats for season %d: %w", season, err)
			}
			res.Written += len(batch)
			batch = batch[:0]
			return nil
		}

		for _, raw := range raws {
			var play statsapi.Play
			if err := json.Unmarshal(raw.Details, &play); err != nil {
				res.Failed++
				slog.WithField("play_id", raw.ID).WithError(err).Warn("Stored play payload unreadable, skipping")
				continue
			}

			atBat, ok := pbp.BuildAtBat(&play, sportID, raw.GameMLBID, ids)
			if !ok {
				res.Skipped++
				continue
			}
			if err := s.validator.Validate(*atBat); err != nil {
				res.Failed++
				slog.WithFields(map[string]any{
					"game_mlb_id":  raw.GameMLBID,
					"at_bat_index": play.About.AtBatIndex,
				}).WithError(err).Warn("Validation failed, skipping at-bat")
				continue
			}

			batch = append(batch, *atBat)
			if len(batch) >= s.cfg.Sync.BatchSize {
				if err := flush(); err != nil {
					return res, err
				}
			}
		}
		if err := flush(); err != nil {
			return res, err
		}

		slog.LogSeasonSummary(season, len(raws), res.Written, res.Failed)
	}

	metrics.EntitiesInsertedTotal.WithLabelValues("at_bat").Add(float64(res.Written))
	metrics.ValidationFailuresTotal.WithLabelValues("at_bat").Add(float64(res.Failed))

	slog.WithFields(map[string]any{
		"plays":   res.Source,
		"skipped": res.Skipped,
		"written": res.Written,
		"failed":  res.Failed,
	}).Info("Sync complete")
	return res, nil
}
