package tracking

import (
	"context"

	"github.com/Olii83/gym-tracker/internal/exercises"
	"github.com/Olii83/gym-tracker/internal/profiles"
	"github.com/Olii83/gym-tracker/internal/trainings"
	"github.com/Olii83/gym-tracker/internal/workoutlog"
)

//go:generate mockgen -source=$GOFILE -destination=datastore_mocks_test.go -package=tracking_test

// Datastore is everything a tracking session needs from persistence.
type Datastore interface {
	GetTraining(ctx context.Context, userID string, id int) (*trainings.Training, error)
	ListTrainingExercises(ctx context.Context, trainingID int) ([]trainings.TrainingExercise, error)
	ListPlannedSets(ctx context.Context, trainingExerciseID int) ([]trainings.PlannedSet, error)
	GetExercise(ctx context.Context, userID string, id int) (*exercises.Exercise, error)
	ListWorkoutLogs(ctx context.Context, userID string) ([]workoutlog.Log, error)
	InsertWorkoutLog(ctx context.Context, workoutLog workoutlog.Log) (*workoutlog.Log, error)
	UpdateExerciseOrder(ctx context.Context, trainingID, trainingExerciseID, orderNum int) error
	GetProfile(ctx context.Context, userID string) (*profiles.Profile, error)
	InvalidateExerciseHistory(userID string, exerciseID int)
}
