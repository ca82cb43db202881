package workoutlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrLogNotFound = errors.New("workout log not found")

type ListParams struct {
	UserID     string
	ExerciseID int
	From       *time.Time
	To         *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog Log) (_ *Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_log
				(user_id, exercise_id, reps, weight, created_at)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		workoutLog.UserID, workoutLog.ExerciseID, workoutLog.Reps, workoutLog.Weight, workoutLog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("workoutlog.id", id))

	workoutLog.ID = id
	return &workoutLog, nil
}

// List returns logs newest first, optionally narrowed to an exercise
// and a time range.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Log, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", params.ExerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, exercise_id, reps, weight, created_at
			FROM workout_log
			WHERE user_id = $1
				AND ($2::int = 0 OR exercise_id = $2)
				AND ($3::timestamp IS NULL OR created_at >= $3)
				AND ($4::timestamp IS NULL OR created_at <= $4)
			ORDER BY created_at DESC;`,
		params.UserID, params.ExerciseID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}
	return logs, nil
}

func (r *Repo) Update(ctx context.Context, userID string, workoutLog Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workoutLog.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_log SET reps = $1, weight = $2 WHERE id = $3 AND user_id = $4`,
		workoutLog.Reps, workoutLog.Weight, workoutLog.ID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (r *Repo) rows2logs(rows pgx.Rows) ([]Log, error) {
	var logs []Log
	for rows.Next() {
		var workoutLog Log
		if err := rows.Scan(
			&workoutLog.ID,
			&workoutLog.UserID,
			&workoutLog.ExerciseID,
			&workoutLog.Reps,
			&workoutLog.Weight,
			&workoutLog.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, workoutLog)
	}
	return logs, nil
}
