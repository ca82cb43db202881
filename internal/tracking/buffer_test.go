package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Olii83/gym-tracker/internal/tracking"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedSet(trainingExerciseID int, ref tracking.SetRef) tracking.BufferedSet {
	return tracking.BufferedSet{
		TrainingExerciseID: trainingExerciseID,
		Ref:                ref,
		ExerciseID:         gofakeit.Number(1, 100),
		Reps:               gofakeit.Number(1, 20),
		Weight:             float64(gofakeit.Number(20, 200)),
		LoggedAt:           time.Now(),
	}
}

func TestLogBuffer_AddReplacesSameSet(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	ref := tracking.PlannedSetRef(31)

	buffer.Add(bufferedSet(21, ref))
	assert.Equal(t, 1, buffer.Pending())

	replacement := bufferedSet(21, ref)
	replacement.Reps = 5
	buffer.Add(replacement)

	assert.Equal(t, 1, buffer.Pending())
	snapshot := buffer.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 5, snapshot[0].Reps)
}

func TestLogBuffer_SnapshotKeepsInsertionOrder(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(31)))
	buffer.Add(bufferedSet(22, tracking.PlannedSetRef(33)))
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(32)))

	snapshot := buffer.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, 21, snapshot[0].TrainingExerciseID)
	assert.Equal(t, 22, snapshot[1].TrainingExerciseID)
	assert.Equal(t, 21, snapshot[2].TrainingExerciseID)
}

func TestLogBuffer_RemoveMatching(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	ref := tracking.PlannedSetRef(31)
	buffer.Add(bufferedSet(21, ref))
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(32)))

	buffer.RemoveMatching(21, ref)
	assert.Equal(t, 1, buffer.Pending())

	// removing a set that was never buffered is a no-op
	buffer.RemoveMatching(21, ref)
	assert.Equal(t, 1, buffer.Pending())
}

func TestLogBuffer_FlushAll(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(31)))
	buffer.Add(bufferedSet(22, tracking.PlannedSetRef(33)))

	var inserted int
	report, err := buffer.FlushAll(context.Background(), func(_ context.Context, _ tracking.BufferedSet) error {
		inserted++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Flushed)
	assert.Zero(t, report.Failed)
	assert.Equal(t, 2, inserted)
	assert.Zero(t, buffer.Pending())
}

func TestLogBuffer_FlushAll_partialFailure(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(31)))
	buffer.Add(bufferedSet(22, tracking.PlannedSetRef(33)))

	report, err := buffer.FlushAll(context.Background(), func(_ context.Context, set tracking.BufferedSet) error {
		if set.TrainingExerciseID == 22 {
			return errors.New("db down")
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 1, report.Flushed)
	assert.Equal(t, 1, report.Failed)
	// only the failed entry stays pending
	assert.Equal(t, 1, buffer.Pending())

	// a second flush retries just that entry
	var retried int
	report, err = buffer.FlushAll(context.Background(), func(_ context.Context, _ tracking.BufferedSet) error {
		retried++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Flushed)
	assert.Equal(t, 1, retried)
	assert.Zero(t, buffer.Pending())
}

func TestLogBuffer_Clear(t *testing.T) {
	buffer := tracking.NewLogBuffer()
	buffer.Add(bufferedSet(21, tracking.PlannedSetRef(31)))
	buffer.Add(bufferedSet(22, tracking.PlannedSetRef(33)))

	assert.Equal(t, 2, buffer.Clear())
	assert.Zero(t, buffer.Pending())
	assert.Zero(t, buffer.Clear())
}
