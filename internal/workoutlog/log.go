package workoutlog

import (
	"time"
)

// Log is one performed set. Weight is always stored in kilograms,
// conversion to the display unit happens at the edges.
type Log struct {
	ID         int       `json:"id"`
	UserID     string    `json:"userId"`
	ExerciseID int       `json:"exerciseId"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	CreatedAt  time.Time `json:"createdAt"`
}
