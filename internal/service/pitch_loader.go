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

// playKey locates a staged play by its game and plate appearance order.
type playKey struct {
	gameMLBID  int64
	atBatIndex int
}

// LoadPitches sequences pitch records for every persisted at-bat of each
// season. The staged raw play is the event authority: at-bats are matched
// back to their play by game and at-bat index, and an at-bat whose play
// cannot be found is skipped.
func (s *Service) LoadPitches(ctx context.Context, sportID int, seasons SeasonRange) (DeriveResult, error) {
	start := time.Now()
	defer metrics.ObserveStage("pitches", start)

	slog := logger.NewSyncLogger(s.log, "pitches", sportID)

	var res DeriveResult
	for _, season := range seasons.Seasons() {
		atBats, err := s.repos.AtBat.ListBySeason(ctx, sportID, season)
		if err != nil {
			return res, fmt.Errorf("listing at-bats for season %d: %w", season, err)
		}
		res.Source += len(atBats)

		plays, err := s.loadSeasonPlays(ctx, sportID, season, slog)
		if err != nil {
			return res, err
		}

		var batch []models.Pitch
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := s.repos.Pitch.BulkInsert(ctx, batch); err != nil {
				return fmt.Errorf("writing pitches for season %d: %w", season, err)
			}
			res.Written += len(batch)
			batch = batch[:0]
			return nil
		}

		for i := range atBats {
			ab := &atBats[i]
			play, ok := plays[playKey{ab.GameMLBID, ab.AtBatIndex}]
			if !ok {
				res.Skipped++
				slog.WithFields(map[string]any{
					"game_mlb_id":  ab.GameMLBID,
					"at_bat_index": ab.AtBatIndex,
				}).Warn("No staged play for at-bat, skipping")
				continue
			}

			for _, pitch := range pbp.Sequence(play, ab.ID) {
				if err := s.validator.Validate(pitch); err != nil {
					res.Failed++
					slog.WithFields(map[string]any{
						"at_bat_id":   ab.ID,
						"pitch_index": pitch.PitchIndex,
					}).WithError(err).Warn("Validation failed, skipping pitch")
					continue
				}
				batch = append(batch, pitch)
				if len(batch) >= s.cfg.Sync.BatchSize {
					if err := flush(); err != nil {
						return res, err
					}
				}
			}
		}
		if err := flush(); err != nil {
			return res, err
		}

		slog.LogSeasonSummary(season, len(atBats), res.Written, res.Failed)
	}

	metrics.EntitiesInsertedTotal.WithLabelValues("pitch").Add(float64(res.Written))
	metrics.ValidationFailuresTotal.WithLabelValues("pitch").Add(float64(res.Failed))

	slog.WithFields(map[string]any{
		"at_bats": res.Source,
		"skipped": res.Skipped,
		"written": res.Written,
		"failed":  res.Failed,
	}).Info("Sync complete")
	return res, nil
}

// loadSeasonPlays decodes every staged play of a season into its typed form,
// keyed for at-bat matching. Unreadable payloads are logged and dropped.
func (s *Service) loadSeasonPlays(ctx context.Context, sportID, season int, slog *logger.SyncLogger) (map[playKey]*statsapi.Play, error) {
	raws, err := s.repos.Play.ListBySeason(ctx, sportID, season)
	if err != nil {
		return nil, fmt.Errorf("listing plays for season %d: %w", season, err)
	}

	plays := make(map[playKey]*statsapi.Play, len(raws))
	for _, raw := range raws {
		play := new(statsapi.Play)
		if err := json.Unmarshal(raw.Details, play); err != nil {
			slog.WithField("play_id", raw.ID).WithError(err).Warn("Stored play payload unreadable, skipping")
			continue
		}
		plays[playKey{raw.GameMLBID, play.About.AtBatIndex}] = play
	}
	return plays, nil
}
