package sync

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	name  string
	valid bool
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("test", true)
}

func noValidate(entity) error { return nil }

func TestRunSplitsInsertsAndUpdates(t *testing.T) {
	fetched := map[int64]entity{
		1: {name: "a"},
		2: {name: "b"},
		3: {name: "c"},
	}
	existing := map[int64]int64{2: 200}

	var inserts, updates []int64
	merge := func(ctx context.Context, internalID *int64, e entity) error {
		if internalID != nil {
			updates = append(updates, *internalID)
		} else {
			inserts = append(inserts, 0)
		}
		return nil
	}

	res := Run(context.Background(), fetched, existing, noValidate, merge, testLogger())

	assert.Equal(t, Result{Inserted: 2, Updated: 1, Failed: 0}, res)
	assert.Len(t, inserts, 2)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(200), updates[0])
}

func TestRunSecondPassIsAllUpdates(t *testing.T) {
	fetched := map[int64]entity{1: {}, 2: {}, 3: {}}

	existing := make(map[int64]int64)
	next := int64(100)
	merge := func(ctx context.Context, internalID *int64, e entity) error {
		return nil
	}

	first := Run(context.Background(), fetched, existing, noValidate, merge, testLogger())
	assert.Equal(t, Result{Inserted: 3}, first)

	// Simulate the store having assigned ids
	for id := range fetched {
		existing[id] = next
		next++
	}

	second := Run(context.Background(), fetched, existing, noValidate, merge, testLogger())
	assert.Equal(t, Result{Updated: 3}, second)
}

func TestRunValidationFailureIsolated(t *testing.T) {
	fetched := map[int64]entity{
		1: {valid: true},
		2: {valid: false},
		3: {valid: true},
	}

	validate := func(e entity) error {
		if !e.valid {
			return errors.New("missing required field")
		}
		return nil
	}

	var merged int
	merge := func(ctx context.Context, internalID *int64, e entity) error {
		merged++
		return nil
	}

	res := Run(context.Background(), fetched, nil, validate, merge, testLogger())

	assert.Equal(t, Result{Inserted: 2, Failed: 1}, res)
	assert.Equal(t, 2, merged)
}

func TestRunMergeFailureIsolated(t *testing.T) {
	fetched := map[int64]entity{1: {}, 2: {}, 3: {}}

	var calls int
	merge := func(ctx context.Context, internalID *int64, e entity) error {
		calls++
		if calls == 2 {
			return errors.New("constraint violation")
		}
		return nil
	}

	res := Run(context.Background(), fetched, nil, noValidate, merge, testLogger())

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.Inserted)
}

func TestResultString(t *testing.T) {
	res := Result{Inserted: 1, Updated: 2, Failed: 3}
	assert.Equal(t, "inserted=1 updated=2 failed=3", res.String())
}
