package repository

import (
	"fmt"

	"github.com/yourusername/mlb-pbp/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Player PlayerRepository
	Team   TeamRepository
	Game   GameRepository
	Play   PlayRepository
	AtBat  AtBatRepository
	Pitch  PitchRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Player: NewPostgresPlayerRepository(db),
		Team:   NewPostgresTeamRepository(db),
		Game:   NewPostgresGameRepository(db),
		Play:   NewPostgresPlayRepository(db),
		AtBat:  NewPostgresAtBatRepository(db),
		Pitch:  NewPostgresPitchRepository(db),
	}, nil
}
