package tracking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Olii83/gym-tracker/internal/tracking"
	"github.com/Olii83/gym-tracker/internal/trainings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persistedRank struct {
	trainingExerciseID int
	orderNum           int
}

func orderedSlots(ids ...int) []tracking.ExerciseSlot {
	slots := make([]tracking.ExerciseSlot, 0, len(ids))
	for i, id := range ids {
		slots = append(slots, tracking.ExerciseSlot{
			TrainingExercise: trainings.TrainingExercise{ID: id, OrderNum: i},
		})
	}
	return slots
}

func slotIDs(slots []tracking.ExerciseSlot) []int {
	ids := make([]int, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.TrainingExercise.ID)
	}
	return ids
}

func TestOrderManager_Move(t *testing.T) {
	var persisted []persistedRank
	manager := tracking.NewOrderManager(func(_ context.Context, trainingExerciseID, orderNum int) error {
		persisted = append(persisted, persistedRank{trainingExerciseID, orderNum})
		return nil
	})

	// move the second slot to the end
	moved, err := manager.Move(context.Background(), orderedSlots(1, 2, 3, 4), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 2}, slotIDs(moved))
	for i, s := range moved {
		assert.Equal(t, i, s.TrainingExercise.OrderNum)
	}
	// only the slots whose rank changed were written
	assert.Equal(t, []persistedRank{{3, 1}, {4, 2}, {2, 3}}, persisted)
}

func TestOrderManager_Move_toFront(t *testing.T) {
	var persisted []persistedRank
	manager := tracking.NewOrderManager(func(_ context.Context, trainingExerciseID, orderNum int) error {
		persisted = append(persisted, persistedRank{trainingExerciseID, orderNum})
		return nil
	})

	moved, err := manager.Move(context.Background(), orderedSlots(1, 2, 3), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, slotIDs(moved))
	assert.Equal(t, []persistedRank{{3, 0}, {1, 1}, {2, 2}}, persisted)
}

func TestOrderManager_Move_samePosition(t *testing.T) {
	manager := tracking.NewOrderManager(func(_ context.Context, _, _ int) error {
		t.Fatal("no write expected")
		return nil
	})

	slots := orderedSlots(1, 2, 3)
	moved, err := manager.Move(context.Background(), slots, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, slotIDs(moved))
}

func TestOrderManager_Move_outOfRange(t *testing.T) {
	manager := tracking.NewOrderManager(func(_ context.Context, _, _ int) error {
		return nil
	})

	slots := orderedSlots(1, 2, 3)
	_, err := manager.Move(context.Background(), slots, -1, 1)
	assert.ErrorIs(t, err, tracking.ErrBadPosition)
	_, err = manager.Move(context.Background(), slots, 0, 3)
	assert.ErrorIs(t, err, tracking.ErrBadPosition)
}

func TestOrderManager_Move_failureReturnsSnapshot(t *testing.T) {
	calls := 0
	manager := tracking.NewOrderManager(func(_ context.Context, _, _ int) error {
		calls++
		if calls == 2 {
			return errors.New("db down")
		}
		return nil
	})

	moved, err := manager.Move(context.Background(), orderedSlots(1, 2, 3, 4), 0, 2)
	require.Error(t, err)
	// the pre-move order comes back untouched
	assert.Equal(t, []int{1, 2, 3, 4}, slotIDs(moved))
	for i, s := range moved {
		assert.Equal(t, i, s.TrainingExercise.OrderNum)
	}
}
