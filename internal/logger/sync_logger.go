// Package logger provides structured logging for sync stages.
package logger

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SyncLogger provides a per-stage log entry carrying the stage name, league
// and a run id so one invocation's records can be correlated.
type SyncLogger struct {
	*logrus.Entry
	runID uuid.UUID
}

// NewSyncLogger creates a stage-scoped logger with a fresh run id.
func NewSyncLogger(baseLogger *logrus.Logger, stage string, sportID int) *SyncLogger {
	runID := uuid.New()
	return &SyncLogger{
		Entry: baseLogger.WithFields(logrus.Fields{
			"component": "sync",
			"stage":     stage,
			"sport_id":  sportID,
			"run_id":    runID.String(),
		}),
		runID: runID,
	}
}

// RunID returns the identifier for this invocation.
func (sl *SyncLogger) RunID() uuid.UUID {
	return sl.runID
}

// LogSeasonSummary records completion of one season within a stage run.
func (sl *SyncLogger) LogSeasonSummary(season, fetched, written, failed int) {
	sl.WithFields(logrus.Fields{
		"season":  season,
		"fetched": fetched,
		"written": written,
		"failed":  failed,
	}).Info("Season complete")
}

// LogStageSummary records completion of a full stage run.
func (sl *SyncLogger) LogStageSummary(inserted, updated, failed int) {
	sl.WithFields(logrus.Fields{
		"inserted": inserted,
		"updated":  updated,
		"failed":   failed,
	}).Info("Sync complete")
}
