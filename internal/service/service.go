// Package service orchestrates the ingestion stages: entity syncs, raw play
// staging, at-bat and pitch derivation, and the substitution fix pass.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/mlb-pbp/internal/config"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/repository"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// StatsAPI is the upstream surface the stages consume.
type StatsAPI interface {
	SeasonPlayers(ctx context.Context, sportID, season int) ([]statsapi.Person, error)
	SeasonTeams(ctx context.Context, sportID, season int) ([]statsapi.TeamEntry, error)
	Schedule(ctx context.Context, sportID, season int) ([]statsapi.ScheduleGame, error)
	PlayByPlay(ctx context.Context, gameMLBID int64) ([]statsapi.Play, error)
}

// Service wires the stages to their dependencies. Stages are invoked one at
// a time; each is restartable and failures are isolated per record.
type Service struct {
	api       StatsAPI
	repos     *repository.Repositories
	validator *models.SchemaValidator
	cfg       *config.Config
	log       *logrus.Logger
}

// NewService creates the stage orchestrator.
func NewService(api StatsAPI, repos *repository.Repositories, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		api:       api,
		repos:     repos,
		validator: models.NewSchemaValidator(),
		cfg:       cfg,
		log:       log,
	}
}

// SeasonRange holds the half-open season interval a stage operates on.
// End is exclusive: {2023, 2024} means the 2023 season only.
type SeasonRange struct {
	Start int
	End   int
}

// Seasons enumerates the range.
func (r SeasonRange) Seasons() []int {
	var seasons []int
	for s := r.Start; s < r.End; s++ {
		seasons = append(seasons, s)
	}
	return seasons
}

// parseAPIDate parses the API's date format, returning nil for absent or
// malformed values.
func parseAPIDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
