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

// SyncPlayers fetches every player registered for the league across the
// season range and merges them into the player table. A player seen in
// several seasons is merged once, with the latest season's record winning.
func (s *Service) SyncPlayers(ctx context.Context, sportID int, seasons SeasonRange) (syncengine.Result, error) {
	start := time.Now()
	defer metrics.ObserveStage("players", start)

	slog := logger.NewSyncLogger(s.log, "players", sportID)

	existing, err := s.repos.Player.ListIDMap(ctx)
	if err != nil {
		return syncengine.Result{}, fmt.Errorf("listing existing players: %w", err)
	}

	fetched := make(map[int64]models.Player)
	for _, season := range seasons.Seasons() {
		people, err := s.api.SeasonPlayers(ctx, sportID, season)
		if err != nil {
			metrics.FetchErrorsTotal.WithLabelValues("players").Inc()
			return syncengine.Result{}, fmt.Errorf("fetching players for season %d: %w", season, err)
		}
		for _, p := range people {
			fetched[p.ID] = personToPlayer(p)
		}
		slog.WithFields(map[string]any{"season": season, "fetched": len(people)}).Info("Season players fetched")
	}

	res := syncengine.Run(ctx, fetched, existing,
		func(p models.Player) error { return s.validator.Validate(p) },
		s.repos.Player.Merge,
		slog.Entry,
	)

	metrics.EntitiesInsertedTotal.WithLabelValues("player").Add(float64(res.Inserted))
	metrics.EntitiesUpdatedTotal.WithLabelValues("player").Add(float64(res.Updated))
	metrics.ValidationFailuresTotal.WithLabelValues("player").Add(float64(res.Failed))

	slog.LogStageSummary(res.Inserted, res.Updated, res.Failed)
	return res, nil
}

// personToPlayer flattens an API person into a player record, keeping the
// full payload in Details.
func personToPlayer(p statsapi.Person) models.Player {
	player := models.Player{
		MLBID:          p.ID,
		FullName:       p.FullName,
		IsPlayer:       p.IsPlayer,
		Active:         p.Active,
		BirthDate:      parseAPIDate(p.BirthDate),
		BirthCity:      p.BirthCity,
		BirthCountry:   p.BirthCountry,
		MLBDebutDate:   parseAPIDate(p.MLBDebutDate),
		LastPlayedDate: parseAPIDate(p.LastPlayedDate),
		Details:        p.Raw,
	}
	if p.PitchHand != nil {
		player.Throws = &p.PitchHand.Code
	}
	if p.BatSide != nil {
		player.Bats = &p.BatSide.Code
	}
	if p.PrimaryPosition != nil {
		player.PrimaryPositionCode = &p.PrimaryPosition.Code
		player.PrimaryPosition = &p.PrimaryPosition.Name
	}
	return player
}
