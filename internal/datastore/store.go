// Package datastore bundles the entity repos behind the narrow
// persistence surface the tracking session works against.
package datastore

import (
	"context"

	"github.com/Olii83/gym-tracker/internal/exercises"
	"github.com/Olii83/gym-tracker/internal/profiles"
	"github.com/Olii83/gym-tracker/internal/trainings"
	"github.com/Olii83/gym-tracker/internal/workoutlog"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	exercises *exercises.Repo
	trainings *trainings.Repo
	logs      *workoutlog.Repo
	profiles  *profiles.Repo
	analyzer  *workoutlog.Analyzer
}

func New(db *pgxpool.Pool) *Store {
	logsRepo := workoutlog.NewRepo(db)
	return &Store{
		exercises: exercises.NewRepo(db),
		trainings: trainings.NewRepo(db),
		logs:      logsRepo,
		profiles:  profiles.NewRepo(db),
		analyzer:  workoutlog.NewAnalyzer(logsRepo),
	}
}

func NewWithRepos(
	exercisesRepo *exercises.Repo,
	trainingsRepo *trainings.Repo,
	logsRepo *workoutlog.Repo,
	profilesRepo *profiles.Repo,
) *Store {
	return &Store{
		exercises: exercisesRepo,
		trainings: trainingsRepo,
		logs:      logsRepo,
		profiles:  profilesRepo,
		analyzer:  workoutlog.NewAnalyzer(logsRepo),
	}
}

// Analyzer exposes the history analyzer, shared with the logs
// handler so both invalidate the same cache.
func (s *Store) Analyzer() *workoutlog.Analyzer {
	return s.analyzer
}

func (s *Store) InvalidateExerciseHistory(userID string, exerciseID int) {
	s.analyzer.InvalidateHistory(userID, exerciseID)
}

func (s *Store) GetTraining(ctx context.Context, userID string, id int) (*trainings.Training, error) {
	return s.trainings.Get(ctx, userID, id)
}

func (s *Store) ListTrainingExercises(ctx context.Context, trainingID int) ([]trainings.TrainingExercise, error) {
	return s.trainings.ListExercises(ctx, trainingID)
}

func (s *Store) ListPlannedSets(ctx context.Context, trainingExerciseID int) ([]trainings.PlannedSet, error) {
	return s.trainings.ListPlannedSets(ctx, trainingExerciseID)
}

func (s *Store) GetExercise(ctx context.Context, userID string, id int) (*exercises.Exercise, error) {
	return s.exercises.Get(ctx, userID, id)
}

func (s *Store) ListWorkoutLogs(ctx context.Context, userID string) ([]workoutlog.Log, error) {
	return s.logs.List(ctx, workoutlog.ListParams{UserID: userID})
}

func (s *Store) InsertWorkoutLog(ctx context.Context, workoutLog workoutlog.Log) (*workoutlog.Log, error) {
	return s.logs.Add(ctx, workoutLog)
}

func (s *Store) UpdateExerciseOrder(ctx context.Context, trainingID, trainingExerciseID, orderNum int) error {
	return s.trainings.UpdateExerciseOrder(ctx, trainingID, trainingExerciseID, orderNum)
}

func (s *Store) GetProfile(ctx context.Context, userID string) (*profiles.Profile, error) {
	return s.profiles.Get(ctx, userID)
}
