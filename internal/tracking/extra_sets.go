package tracking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrExtraSetNotFound = errors.New("extra set not found")

// ExtraSet is a set added on top of the planned ones during the
// session. Number continues the planned numbering: with 3 planned
// sets the first extra is number 4.
type ExtraSet struct {
	ID                 string `json:"id"`
	TrainingExerciseID int    `json:"trainingExerciseId"`
	Number             int    `json:"number"`
}

// ExtraSetManager keeps the extra sets of the running session,
// per exercise slot. Numbers stay contiguous after removals.
//
// Not safe for concurrent use, the owning session serializes access.
type ExtraSetManager struct {
	bySlot map[int][]ExtraSet
}

func NewExtraSetManager() *ExtraSetManager {
	return &ExtraSetManager{
		bySlot: make(map[int][]ExtraSet),
	}
}

// Add appends a new extra set for the given exercise slot.
// plannedCount is the number of planned sets of that slot, used to
// continue the numbering.
func (em *ExtraSetManager) Add(trainingExerciseID, plannedCount int) ExtraSet {
	extra := ExtraSet{
		ID:                 uuid.NewString(),
		TrainingExerciseID: trainingExerciseID,
		Number:             plannedCount + len(em.bySlot[trainingExerciseID]) + 1,
	}
	em.bySlot[trainingExerciseID] = append(em.bySlot[trainingExerciseID], extra)
	return extra
}

// Remove deletes an extra set and renumbers the remaining ones of
// the same slot so the numbering has no gaps.
func (em *ExtraSetManager) Remove(trainingExerciseID int, extraID string, plannedCount int) error {
	sets := em.bySlot[trainingExerciseID]
	idx := -1
	for i, s := range sets {
		if s.ID == extraID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrExtraSetNotFound
	}

	sets = append(sets[:idx], sets[idx+1:]...)
	for i := range sets {
		sets[i].Number = plannedCount + i + 1
	}

	if len(sets) == 0 {
		delete(em.bySlot, trainingExerciseID)
	} else {
		em.bySlot[trainingExerciseID] = sets
	}
	return nil
}

// List returns the extra sets of one slot in numbering order.
func (em *ExtraSetManager) List(trainingExerciseID int) []ExtraSet {
	return em.bySlot[trainingExerciseID]
}

func (em *ExtraSetManager) Count(trainingExerciseID int) int {
	return len(em.bySlot[trainingExerciseID])
}

func (em *ExtraSetManager) Get(trainingExerciseID int, extraID string) (ExtraSet, bool) {
	for _, s := range em.bySlot[trainingExerciseID] {
		if s.ID == extraID {
			return s, true
		}
	}
	return ExtraSet{}, false
}
