package profiles

import (
	"github.com/Olii83/gym-tracker/internal/units"
)

// Profile holds per-user settings. Unit is the default weight unit
// used when logging sets, unless an exercise overrides it.
type Profile struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	FullName *string    `json:"fullName,omitempty"`
	Unit     units.Unit `json:"unit"`

	// never serialized
	PasswordHash string `json:"-"`
}
