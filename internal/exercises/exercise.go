package exercises

import (
	"github.com/Olii83/gym-tracker/internal/units"
)

// Exercise is a movement a user can train. Exercises with no owner
// (UserID nil) are shared defaults, visible to everyone but read-only.
type Exercise struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup string      `json:"muscleGroup"`
	Equipment   *string     `json:"equipment,omitempty"`
	UserID      *string     `json:"userId,omitempty"`
	// PreferredUnit overrides the profile default unit when this
	// exercise is logged.
	PreferredUnit *units.Unit `json:"preferredUnit,omitempty"`
}

func (e Exercise) Shared() bool {
	return e.UserID == nil
}

// OwnedBy reports whether the given user may modify this exercise.
func (e Exercise) OwnedBy(userID string) bool {
	return e.UserID != nil && *e.UserID == userID
}
