package tracking

// CompletionTracker holds which sets are ticked off in the running
// session. It is the single owner of completion state, extra set
// descriptors and buffered logs never duplicate it.
//
// Not safe for concurrent use, the owning session serializes access.
type CompletionTracker struct {
	completed map[string]bool
	perSlot   map[int]int
}

func NewCompletionTracker() *CompletionTracker {
	return &CompletionTracker{
		completed: make(map[string]bool),
		perSlot:   make(map[int]int),
	}
}

func (ct *CompletionTracker) Complete(trainingExerciseID int, ref SetRef) {
	key := setKey(trainingExerciseID, ref)
	if ct.completed[key] {
		return
	}
	ct.completed[key] = true
	ct.perSlot[trainingExerciseID]++
}

func (ct *CompletionTracker) Uncomplete(trainingExerciseID int, ref SetRef) {
	key := setKey(trainingExerciseID, ref)
	if !ct.completed[key] {
		return
	}
	delete(ct.completed, key)
	ct.perSlot[trainingExerciseID]--
	if ct.perSlot[trainingExerciseID] == 0 {
		delete(ct.perSlot, trainingExerciseID)
	}
}

func (ct *CompletionTracker) IsCompleted(trainingExerciseID int, ref SetRef) bool {
	return ct.completed[setKey(trainingExerciseID, ref)]
}

// CompletedCount returns the number of ticked sets of one exercise
// slot, planned and extra together.
func (ct *CompletionTracker) CompletedCount(trainingExerciseID int) int {
	return ct.perSlot[trainingExerciseID]
}

// Forget drops the completion state of one set, used when an extra
// set is removed from the session.
func (ct *CompletionTracker) Forget(trainingExerciseID int, ref SetRef) {
	ct.Uncomplete(trainingExerciseID, ref)
}

func (ct *CompletionTracker) TotalCompleted() int {
	return len(ct.completed)
}
