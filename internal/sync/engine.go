// Package sync implements the generic diff-and-upsert engine used by the
// player, team and game ingestion stages.
package sync

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Result tallies the outcome of one engine invocation. There is no
// per-entity success signal beyond this; failed entities are not retried.
type Result struct {
	Inserted int
	Updated  int
	Failed   int
}

// String renders the tally for stage summaries.
func (r Result) String() string {
	return fmt.Sprintf("inserted=%d updated=%d failed=%d", r.Inserted, r.Updated, r.Failed)
}

// MergeFunc performs the write for one entity. internalID is non-nil when
// the entity already exists; implementations must preserve it and overwrite
// every other field.
type MergeFunc[T any] func(ctx context.Context, internalID *int64, entity T) error

// ValidateFunc gates an entity before the write.
type ValidateFunc[T any] func(entity T) error

// Run diffs freshly fetched entities against the already-persisted id map
// and merges each one. An entity whose external id appears in existing is
// updated in place under its existing internal id; otherwise it is inserted
// and the store assigns the id. A validation or merge failure logs the
// external id, counts the entity as failed and moves on; it never aborts
// the rest of the batch.
func Run[T any](ctx context.Context, fetched map[int64]T, existing map[int64]int64, validate ValidateFunc[T], merge MergeFunc[T], logger *logrus.Entry) Result {
	var res Result

	for externalID, entity := range fetched {
		if err := validate(entity); err != nil {
			res.Failed++
			logger.WithField("mlb_id", externalID).WithError(err).Warn("Validation failed, skipping entity")
			continue
		}

		var internalID *int64
		if id, ok := existing[externalID]; ok {
			internalID = &id
		}

		if err := merge(ctx, internalID, entity); err != nil {
			res.Failed++
			logger.WithField("mlb_id", externalID).WithError(err).Warn("Merge failed, skipping entity")
			continue
		}

		if internalID != nil {
			res.Updated++
		} else {
			res.Inserted++
		}
	}

	return res
}
