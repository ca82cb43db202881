package tracking

import (
	"fmt"
)

// SetKind says whether a set reference points at a planned set of
// the training or at an extra set added during the session.
type SetKind string

const (
	SetKindPlanned SetKind = "planned"
	SetKindExtra   SetKind = "extra"
)

// SetRef identifies one set of an exercise within a session. Planned
// sets are referenced by their planned set ID, extra sets by the ID
// assigned when they were added. Positions in a slice are never used
// as identity, so reordering and removals cannot shift a reference
// onto a different set.
type SetRef struct {
	Kind         SetKind `json:"kind"`
	PlannedSetID int     `json:"plannedSetId,omitempty"`
	ExtraID      string  `json:"extraId,omitempty"`
}

func PlannedSetRef(plannedSetID int) SetRef {
	return SetRef{Kind: SetKindPlanned, PlannedSetID: plannedSetID}
}

func ExtraSetRef(extraID string) SetRef {
	return SetRef{Kind: SetKindExtra, ExtraID: extraID}
}

func (r SetRef) Valid() bool {
	switch r.Kind {
	case SetKindPlanned:
		return r.PlannedSetID > 0
	case SetKindExtra:
		return r.ExtraID != ""
	}
	return false
}

// setKey is the map key for per-set state, scoped to the exercise
// slot the set belongs to.
func setKey(trainingExerciseID int, ref SetRef) string {
	if ref.Kind == SetKindPlanned {
		return fmt.Sprintf("te:%d|planned:%d", trainingExerciseID, ref.PlannedSetID)
	}
	return fmt.Sprintf("te:%d|extra:%s", trainingExerciseID, ref.ExtraID)
}
