package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/metrics"
	"github.com/yourusername/mlb-pbp/internal/models"
)

// PlayLoadResult tallies one raw play staging run.
type PlayLoadResult struct {
	Games       int
	FailedGames int
	Plays       int
	Failed      int
}

// LoadPlays stages raw plays for every season game that has none yet. Games
// are fetched concurrently through a bounded worker pool; a game whose fetch
// fails is logged and contributes nothing, and the next run picks it up
// again. Only complete at-bat plays are staged. Writes happen on a single
// goroutine after all fetches settle, in schedule order.
func (s *Service) LoadPlays(ctx context.Context, sportID int, seasons SeasonRange) (PlayLoadResult, error) {
	start := time.Now()
	defer metrics.ObserveStage("plays", start)

	slog := logger.NewSyncLogger(s.log, "plays", sportID)

	var res PlayLoadResult
	for _, season := range seasons.Seasons() {
		gameIDs, err := s.repos.Game.ListIDsWithoutPlays(ctx, sportID, season)
		if err != nil {
			return res, fmt.Errorf("listing unprocessed games for season %d: %w", season, err)
		}
		if len(gameIDs) == 0 {
			slog.WithField("season", season).Info("No unprocessed games")
			continue
		}
		res.Games += len(gameIDs)

		bar := pb.StartNew(len(gameIDs))
		results := make([][]models.Play, len(gameIDs))
		failed := make([]bool, len(gameIDs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.Sync.FetchConcurrency)
		for i, gameMLBID := range gameIDs {
			i, gameMLBID := i, gameMLBID
			g.Go(func() error {
				plays, err := s.api.PlayByPlay(gctx, gameMLBID)
				bar.Increment()
				if err != nil {
					metrics.FetchErrorsTotal.WithLabelValues("play_by_play").Inc()
					slog.WithField("game_mlb_id", gameMLBID).WithError(err).Warn("Play-by-play fetch failed, game deferred")
					failed[i] = true
					return nil
				}
				var staged []models.Play
				for _, p := range plays {
					if !p.IsAtBat() {
						continue
					}
					staged = append(staged, models.Play{
						GameMLBID: gameMLBID,
						SportID:   sportID,
						Season:    season,
						Details:   p.Raw,
					})
				}
				results[i] = staged
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			bar.Finish()
			return res, err
		}
		bar.Finish()

		var batch []models.Play
		seasonPlays, seasonFailed := 0, 0
		for i, staged := range results {
			if failed[i] {
				res.FailedGames++
				continue
			}
			for _, play := range staged {
				if err := s.validator.Validate(play); err != nil {
					res.Failed++
					seasonFailed++
					slog.WithField("game_mlb_id", play.GameMLBID).WithError(err).Warn("Validation failed, skipping play")
					continue
				}
				batch = append(batch, play)
				if len(batch) >= s.cfg.Sync.BatchSize {
					if err := s.repos.Play.BulkInsert(ctx, batch); err != nil {
						return res, fmt.Errorf("staging plays for season %d: %w", season, err)
					}
					res.Plays += len(batch)
					seasonPlays += len(batch)
					batch = batch[:0]
				}
			}
		}
		if len(batch) > 0 {
			if err := s.repos.Play.BulkInsert(ctx, batch); err != nil {
				return res, fmt.Errorf("staging plays for season %d: %w", season, err)
			}
			res.Plays += len(batch)
			seasonPlays += len(batch)
		}

		slog.LogSeasonSummary(season, len(gameIDs), seasonPlays, seasonFailed)
	}

	metrics.EntitiesInsertedTotal.WithLabelValues("play").Add(float64(res.Plays))
	metrics.ValidationFailuresTotal.WithLabelValues("play").Add(float64(res.Failed))

	slog.WithFields(map[string]any{
		"games":        res.Games,
		"failed_games": res.FailedGames,
		"plays":        res.Plays,
		"failed":       res.Failed,
	}).Info("Sync complete")
	return res, nil
}
