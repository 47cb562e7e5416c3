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

// Substitution action event types announced inside a play's event list.
const (
	eventPitchingSubstitution  = "pitching_substitution"
	eventOffensiveSubstitution = "offensive_substitution"
)

// FixResult tallies one substitution fix run.
type FixResult struct {
	Scanned int
	Fixed   int
}

// FixSubstitutions repairs at-bats whose matchup names the player a mid
// plate-appearance substitution replaced. The play's matchup block always
// carries the players who started the plate appearance; when a substitution
// action appears among its events, the incoming player is the one the
// at-bat actually belongs to. The last substitution per role wins. Player
// references are re-resolved against the player table; a substitute missing
// from the player table is skipped so the at-bat keeps its resolved
// references, and a later run after a players sync picks it up.
func (s *Service) FixSubstitutions(ctx context.Context, sportID int, seasons SeasonRange) (FixResult, error) {
	start := time.Now()
	defer metrics.ObserveStage("fix_substitutions", start)

	slog := logger.NewSyncLogger(s.log, "fix_substitutions", sportID)

	players, err := s.repos.Player.ListIDMap(ctx)
	if err != nil {
		return FixResult{}, fmt.Errorf("listing players: %w", err)
	}

	var res FixResult
	for _, season := range seasons.Seasons() {
		atBats, err := s.repos.AtBat.ListBySeason(ctx, sportID, season)
		if err != nil {
			return res, fmt.Errorf("listing at-bats for season %d: %w", season, err)
		}
		res.Scanned += len(atBats)

		plays, err := s.loadSeasonPlays(ctx, sportID, season, slog)
		if err != nil {
			return res, err
		}

		var fixed []*models.AtBat
		for i := range atBats {
			ab := &atBats[i]
			play, ok := plays[playKey{ab.GameMLBID, ab.AtBatIndex}]
			if !ok {
				continue
			}
			if applySubstitutions(ab, play, players) {
				fixed = append(fixed, ab)
			}
		}

		if len(fixed) > 0 {
			if err := s.repos.AtBat.UpdatePlayerRefs(ctx, fixed); err != nil {
				return res, fmt.Errorf("updating at-bats for season %d: %w", season, err)
			}
		}
		res.Fixed += len(fixed)
		slog.WithFields(map[string]any{"season": season, "fixed": len(fixed)}).Info("Season substitutions fixed")
	}

	metrics.EntitiesUpdatedTotal.WithLabelValues("at_bat").Add(float64(res.Fixed))

	slog.WithFields(map[string]any{"scanned": res.Scanned, "fixed": res.Fixed}).Info("Sync complete")
	return res, nil
}

// applySubstitutions rewrites the at-bat's pitcher/batter from substitution
// action events and reports whether anything changed.
func applySubstitutions(ab *models.AtBat, play *statsapi.Play, players map[int64]int64) bool {
	changed := false
	for i := range play.PlayEvents {
		event := &play.PlayEvents[i]
		if event.Type != statsapi.EventTypeAction || event.Details == nil || event.Details.EventType == nil || event.Player == nil {
			continue
		}
		id, known := players[event.Player.ID]
		if !known {
			continue
		}
		switch *event.Details.EventType {
		case eventPitchingSubstitution:
			if ab.PitcherMLBID != event.Player.ID {
				ab.PitcherMLBID = event.Player.ID
				ab.PitcherID = &id
				changed = true
			}
		case eventOffensiveSubstitution:
			if ab.BatterMLBID != event.Player.ID {
				ab.BatterMLBID = event.Player.ID
				ab.BatterID = &id
				changed = true
			}
		}
	}
	return changed
}
