package trainings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/internal/units"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrTrainingNotFound         = errors.New("training not found")
	ErrTrainingExerciseNotFound = errors.New("training exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, training Training) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO training
				(user_id, name, created_at)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		training.UserID, training.Name, training.CreatedAt,
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

	span.SetAttributes(attribute.Int("training.id", id))

	training.ID = id
	return &training, nil
}

func (r *Repo) Get(ctx context.Context, userID string, id int) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, created_at FROM training WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	trainings, err := r.rows2trainings(rows)
	if err != nil {
		return nil, err
	}

	if len(trainings) != 1 {
		return nil, ErrTrainingNotFound
	}

	return &trainings[0], nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, created_at FROM training WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2trainings(rows)
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM training WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

// AddExercise appends an exercise slot at the end of the training.
func (r *Repo) AddExercise(ctx context.Context, te TrainingExercise) (_ *TrainingExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("training.id", te.TrainingID))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO training_exercise
				(training_id, exercise_id, planned_sets, order_num, created_at)
			VALUES (
				$1, $2, $3,
				(SELECT COALESCE(MAX(order_num) + 1, 0) FROM training_exercise WHERE training_id = $1),
				$4
			)
			RETURNING id, order_num;`,
		te.TrainingID, te.ExerciseID, te.PlannedSets, te.CreatedAt,
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

	if err := rows.Scan(&te.ID, &te.OrderNum); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &te, nil
}

// ListExercises returns the exercise slots of a training in plan order.
func (r *Repo) ListExercises(ctx context.Context, trainingID int) (_ []TrainingExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.listexercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("training.id", trainingID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, training_id, exercise_id, planned_sets, order_num, created_at
			FROM training_exercise
			WHERE training_id = $1
			ORDER BY order_num;`,
		trainingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var tes []TrainingExercise
	for rows.Next() {
		var te TrainingExercise
		if err := rows.Scan(
			&te.ID, &te.TrainingID, &te.ExerciseID, &te.PlannedSets, &te.OrderNum, &te.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		tes = append(tes, te)
	}
	return tes, nil
}

// UpdateExerciseOrder persists a new position for one exercise slot.
func (r *Repo) UpdateExerciseOrder(ctx context.Context, trainingID, trainingExerciseID, orderNum int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.updateexerciseorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", trainingExerciseID))
	span.SetAttributes(attribute.Int("order_num", orderNum))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_exercise SET order_num = $1 WHERE id = $2 AND training_id = $3;`,
		orderNum, trainingExerciseID, trainingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingExerciseNotFound
	}
	return nil
}

func (r *Repo) RemoveExercise(ctx context.Context, trainingID, trainingExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.removeexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", trainingExerciseID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM training_exercise WHERE id = $1 AND training_id = $2`,
		trainingExerciseID, trainingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingExerciseNotFound
	}
	return nil
}

// SetPlannedSets replaces the per-set targets of an exercise slot.
// The slot must belong to the given training.
func (r *Repo) SetPlannedSets(ctx context.Context, trainingID, trainingExerciseID int, sets []PlannedSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.setplannedsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", trainingExerciseID))
	span.SetAttributes(attribute.Int("sets", len(sets)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// scoped update goes first, so a slot of another training
	// bails out before its planned sets are touched
	tag, err := tx.Exec(
		ctx,
		`UPDATE training_exercise SET planned_sets = $1 WHERE id = $2 AND training_id = $3;`,
		len(sets), trainingExerciseID, trainingID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingExerciseNotFound
	}

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM training_planned_set WHERE training_exercise_id = $1;`,
		trainingExerciseID,
	); err != nil {
		return err
	}

	for i, set := range sets {
		var plannedUnit *string
		if set.PlannedUnit != nil {
			u := string(*set.PlannedUnit)
			plannedUnit = &u
		}
		if _, err = tx.Exec(
			ctx,
			`INSERT INTO training_planned_set
					(training_exercise_id, set_number, planned_reps, planned_weight, planned_unit)
					VALUES ($1, $2, $3, $4, $5);`,
			trainingExerciseID, i+1, set.PlannedReps, set.PlannedWeight, plannedUnit,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListPlannedSets returns the per-set targets of an exercise slot,
// ordered by set number.
func (r *Repo) ListPlannedSets(ctx context.Context, trainingExerciseID int) (_ []PlannedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.listplannedsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", trainingExerciseID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, training_exercise_id, set_number, planned_reps, planned_weight, planned_unit
			FROM training_planned_set
			WHERE training_exercise_id = $1
			ORDER BY set_number;`,
		trainingExerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var sets []PlannedSet
	for rows.Next() {
		var set PlannedSet
		var plannedUnit *string
		if err := rows.Scan(
			&set.ID, &set.TrainingExerciseID, &set.SetNumber,
			&set.PlannedReps, &set.PlannedWeight, &plannedUnit,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if plannedUnit != nil {
			u, err := units.Parse(*plannedUnit)
			if err != nil {
				return nil, fmt.Errorf("planned set %d: %w", set.ID, err)
			}
			set.PlannedUnit = &u
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func (r *Repo) rows2trainings(rows pgx.Rows) ([]Training, error) {
	var trainings []Training
	for rows.Next() {
		var training Training
		if err := rows.Scan(
			&training.ID, &training.UserID, &training.Name, &training.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trainings = append(trainings, training)
	}
	return trainings, nil
}
