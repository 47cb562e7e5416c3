package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/mlb-pbp/internal/config"
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/repository"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// fakeAPI serves canned responses per season.
type fakeAPI struct {
	players  map[int][]statsapi.Person
	teams    map[int][]statsapi.TeamEntry
	schedule map[int][]statsapi.ScheduleGame
	plays    map[int64][]statsapi.Play
	playErr  map[int64]error
}

func (f *fakeAPI) SeasonPlayers(_ context.Context, _, season int) ([]statsapi.Person, error) {
	return f.players[season], nil
}

func (f *fakeAPI) SeasonTeams(_ context.Context, _, season int) ([]statsapi.TeamEntry, error) {
	return f.teams[season], nil
}

func (f *fakeAPI) Schedule(_ context.Context, _, season int) ([]statsapi.ScheduleGame, error) {
	return f.schedule[season], nil
}

func (f *fakeAPI) PlayByPlay(_ context.Context, gameMLBID int64) ([]statsapi.Play, error) {
	if err := f.playErr[gameMLBID]; err != nil {
		return nil, err
	}
	return f.plays[gameMLBID], nil
}

// In-memory repositories recording writes.

type fakePlayerRepo struct {
	idMap  map[int64]int64
	merged []models.Player
}

func (r *fakePlayerRepo) ListIDMap(context.Context) (map[int64]int64, error) {
	return r.idMap, nil
}

func (r *fakePlayerRepo) Merge(_ context.Context, _ *int64, player models.Player) error {
	r.merged = append(r.merged, player)
	return nil
}

type fakeTeamRepo struct {
	idMap  map[int64]int64
	mlbIDs []int64
	merged []models.Team
}

func (r *fakeTeamRepo) ListIDMap(context.Context, int) (map[int64]int64, error) {
	return r.idMap, nil
}

func (r *fakeTeamRepo) ListMLBIDs(context.Context, int) ([]int64, error) {
	return r.mlbIDs, nil
}

func (r *fakeTeamRepo) Merge(_ context.Context, _ *int64, team models.Team) error {
	r.merged = append(r.merged, team)
	return nil
}

type fakeGameRepo struct {
	idMap        map[int64]int64
	withoutPlays []int64
	inserted     []models.Game
}

func (r *fakeGameRepo) BulkInsert(_ context.Context, games []models.Game) error {
	r.inserted = append(r.inserted, games...)
	return nil
}

func (r *fakeGameRepo) ListIDMap(context.Context, int, int) (map[int64]int64, error) {
	return r.idMap, nil
}

func (r *fakeGameRepo) ListIDsWithoutPlays(context.Context, int, int) ([]int64, error) {
	return r.withoutPlays, nil
}

type fakePlayRepo struct {
	stored   []models.Play
	inserted []models.Play
}

func (r *fakePlayRepo) BulkInsert(_ context.Context, plays []models.Play) error {
	r.inserted = append(r.inserted, plays...)
	return nil
}

func (r *fakePlayRepo) ListBySeason(context.Context, int, int) ([]models.Play, error) {
	return r.stored, nil
}

type fakeAtBatRepo struct {
	stored   []models.AtBat
	inserted []models.AtBat
	updated  []*models.AtBat
}

func (r *fakeAtBatRepo) BulkInsert(_ context.Context, atBats []models.AtBat) error {
	r.inserted = append(r.inserted, atBats...)
	return nil
}

func (r *fakeAtBatRepo) ListBySeason(context.Context, int, int) ([]models.AtBat, error) {
	return r.stored, nil
}

func (r *fakeAtBatRepo) UpdatePlayerRefs(_ context.Context, atBats []*models.AtBat) error {
	r.updated = append(r.updated, atBats...)
	return nil
}

type fakePitchRepo struct {
	inserted []models.Pitch
}

func (r *fakePitchRepo) BulkInsert(_ context.Context, pitches []models.Pitch) error {
	r.inserted = append(r.inserted, pitches...)
	return nil
}

func (r *fakePitchRepo) ListForPitcher(context.Context, int64, repository.PitchFilter) ([]models.PitchScoutingRow, error) {
	return nil, nil
}

func (r *fakePitchRepo) ListForBatter(context.Context, int64, repository.PitchFilter) ([]models.PitchScoutingRow, error) {
	return nil, nil
}

type fixtures struct {
	api    *fakeAPI
	player *fakePlayerRepo
	team   *fakeTeamRepo
	game   *fakeGameRepo
	play   *fakePlayRepo
	atBat  *fakeAtBatRepo
	pitch  *fakePitchRepo
	log    *logrus.Logger
	svc    *Service
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()

	f := &fixtures{
		api: &fakeAPI{
			players:  make(map[int][]statsapi.Person),
			teams:    make(map[int][]statsapi.TeamEntry),
			schedule: make(map[int][]statsapi.ScheduleGame),
			plays:    make(map[int64][]statsapi.Play),
			playErr:  make(map[int64]error),
		},
		player: &fakePlayerRepo{idMap: make(map[int64]int64)},
		team:   &fakeTeamRepo{idMap: make(map[int64]int64)},
		game:   &fakeGameRepo{idMap: make(map[int64]int64)},
		play:   &fakePlayRepo{},
		atBat:  &fakeAtBatRepo{},
		pitch:  &fakePitchRepo{},
	}

	repos := &repository.Repositories{
		Player: f.player,
		Team:   f.team,
		Game:   f.game,
		Play:   f.play,
		AtBat:  f.atBat,
		Pitch:  f.pitch,
	}

	cfg := &config.Config{
		Sync: config.SyncConfig{FetchConcurrency: 2, BatchSize: 100},
	}

	f.log = logrus.New()
	f.log.SetOutput(io.Discard)

	f.svc = NewService(f.api, repos, cfg, f.log)
	return f
}

func oneSeason(season int) SeasonRange {
	return SeasonRange{Start: season, End: season + 1}
}
