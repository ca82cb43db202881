package trainings

import (
	"time"

	"github.com/Olii83/gym-tracker/internal/units"
)

// Training is a reusable workout plan owned by a user.
type Training struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TrainingExercise is one exercise slot inside a training. OrderNum
// is its position in the plan, kept dense (0..n-1) per training.
type TrainingExercise struct {
	ID          int       `json:"id"`
	TrainingID  int       `json:"trainingId"`
	ExerciseID  int       `json:"exerciseId"`
	PlannedSets int       `json:"plannedSets"`
	OrderNum    int       `json:"orderNum"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PlannedSet carries the per-set targets for a training exercise.
// Targets are optional, a set can be planned without reps or weight.
type PlannedSet struct {
	ID                 int         `json:"id"`
	TrainingExerciseID int         `json:"trainingExerciseId"`
	SetNumber          int         `json:"setNumber"`
	PlannedReps        *int        `json:"plannedReps,omitempty"`
	PlannedWeight      *float64    `json:"plannedWeight,omitempty"`
	PlannedUnit        *units.Unit `json:"plannedUnit,omitempty"`
}
