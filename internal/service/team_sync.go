package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/mlb-pbp/internal/logger"
	"github.com/yourusername/mlb-pbp/internal/metrics"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
	syncengine "github.com/yourusername/mlb-pbp/internal/sync"
)

// SyncTeams fetches every team registered for the league across the season
// range and merges them into the team table. The resulting roster is what
// game ingestion later filters against.
func (s *Service) SyncTeams(ctx context.Context, sportID int, seasons SeasonRange) (syncengine.Result, error) {
	start := time.Now()
	defer metrics.ObserveStage("teams", start)

	slog := logger.NewSyncLogger(s.log, "teams", sportID)

	existing, err := s.repos.Team.ListIDMap(ctx, sportID)
	if err != nil {
		return syncengine.Result{}, fmt.Errorf("listing existing teams: %w", err)
	}

	fetched := make(map[int64]models.Team)
	for _, season := range seasons.Seasons() {
		teams, err := s.api.SeasonTeams(ctx, sportID, season)
		if err != nil {
			metrics.FetchErrorsTotal.WithLabelValues("teams").Inc()
			return syncengine.Result{}, fmt.Errorf("fetching teams for season %d: %w", season, err)
		}
		for _, t := range teams {
			fetched[t.ID] = teamEntryToTeam(t, sportID)
		}
		slog.WithFields(map[string]any{"season": season, "fetched": len(teams)}).Info("Season teams fetched")
	}

	res := syncengine.Run(ctx, fetched, existing,
		func(t models.Team) error { return s.validator.Validate(t) },
		s.repos.Team.Merge,
		slog.Entry,
	)

	metrics.EntitiesInsertedTotal.WithLabelValues("team").Add(float64(res.Inserted))
	metrics.EntitiesUpdatedTotal.WithLabelValues("team").Add(float64(res.Updated))
	metrics.ValidationFailuresTotal.WithLabelValues("team").Add(float64(res.Failed))

	slog.LogStageSummary(res.Inserted, res.Updated, res.Failed)
	return res, nil
}

func teamEntryToTeam(t statsapi.TeamEntry, sportID int) models.Team {
	return models.Team{
		MLBID:    t.ID,
		SportID:  sportID,
		Name:     t.Name,
		Active:   t.Active,
		Hometown: t.LocationName,
		Details:  t.Raw,
	}
}
