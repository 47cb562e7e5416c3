package service

import (
	"context"
	"fmt"
)

// SyncAll runs every stage in dependency order for one league and season
// range: entities first, then raw plays, then the derivations, then the
// substitution fix. A stage error stops the pipeline; per-record failures
// inside a stage do not.
func (s *Service) SyncAll(ctx context.Context, sportID int, seasons SeasonRange) error {
	if _, err := s.SyncPlayers(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("players stage: %w", err)
	}
	if _, err := s.SyncTeams(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("teams stage: %w", err)
	}
	if _, err := s.SyncGames(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("games stage: %w", err)
	}
	if _, err := s.LoadPlays(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("plays stage: %w", err)
	}
	if _, err := s.LoadAtBats(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("at-bats stage: %w", err)
	}
	if _, err := s.LoadPitches(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("pitches stage: %w", err)
	}
	if _, err := s.FixSubstitutions(ctx, sportID, seasons); err != nil {
		return fmt.Errorf("substitution fix stage: %w", err)
	}
	return nil
}
