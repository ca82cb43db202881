package tracking

import (
	"context"
	"errors"
	"fmt"
)

var ErrBadPosition = errors.New("position out of range")

type persistOrderFunc func(ctx context.Context, trainingExerciseID, orderNum int) error

// OrderManager moves exercise slots around optimistically: the new
// order is computed locally first, then every changed rank is
// persisted one by one. If any write fails the caller gets the
// pre-move snapshot back, so the visible order never ends up half
// applied.
type OrderManager struct {
	persist persistOrderFunc
}

func NewOrderManager(persist persistOrderFunc) *OrderManager {
	return &OrderManager{
		persist: persist,
	}
}

// Move takes the slot at position from and re-inserts it at position
// to, shifting everything in between. The returned slice carries
// dense ranks 0..n-1.
func (om *OrderManager) Move(
	ctx context.Context,
	slots []ExerciseSlot,
	from, to int,
) ([]ExerciseSlot, error) {
	if from < 0 || from >= len(slots) || to < 0 || to >= len(slots) {
		return slots, fmt.Errorf("%w: from %d, to %d, len %d", ErrBadPosition, from, to, len(slots))
	}
	if from == to {
		return slots, nil
	}

	snapshot := make([]ExerciseSlot, len(slots))
	copy(snapshot, slots)

	reordered := make([]ExerciseSlot, 0, len(slots))
	reordered = append(reordered, slots[:from]...)
	reordered = append(reordered, slots[from+1:]...)
	reordered = append(
		reordered[:to],
		append([]ExerciseSlot{slots[from]}, reordered[to:]...)...,
	)

	for i := range reordered {
		// slots whose rank did not change are skipped, the stored
		// row already holds the right order_num
		if reordered[i].TrainingExercise.OrderNum == i {
			continue
		}
		if err := om.persist(ctx, reordered[i].TrainingExercise.ID, i); err != nil {
			// first failure wins, local state goes back to the snapshot
			return snapshot, fmt.Errorf("persist order of slot %d: %w", reordered[i].TrainingExercise.ID, err)
		}
		reordered[i].TrainingExercise.OrderNum = i
	}

	return reordered, nil
}
