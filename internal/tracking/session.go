package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Olii83/gym-tracker/internal/exercises"
	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"
	"github.com/Olii83/gym-tracker/internal/trainings"
	"github.com/Olii83/gym-tracker/internal/units"
	"github.com/Olii83/gym-tracker/internal/workoutlog"
)

type State string

const (
	// StateActive accepts set completions, extra sets and reorders.
	StateActive State = "active"
	// StateFinishing means a flush is running, everything else waits.
	StateFinishing State = "finishing"
	// StateTerminated is final, reached through finish or cancel.
	StateTerminated State = "terminated"
)

var (
	ErrSessionNotActive = errors.New("session not active")
	ErrSlotNotFound     = errors.New("exercise slot not in session")
	ErrUnknownSet       = errors.New("set not in session")
	ErrInvalidSetValues = errors.New("reps and weight must be positive")
)

// ExerciseSlot is one exercise of the running session: the plan slot,
// the resolved exercise, and its planned sets.
type ExerciseSlot struct {
	TrainingExercise trainings.TrainingExercise `json:"trainingExercise"`
	Exercise         exercises.Exercise         `json:"exercise"`
	PlannedSets      []trainings.PlannedSet     `json:"plannedSets"`
}

// SetValues are the reps and weight suggested or recorded for one
// set. Weight is in the unit the caller asked for.
type SetValues struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// Session tracks one workout from start to finish. All set
// completions stay in an in-memory buffer until Finish persists them
// in one go, Cancel throws them away.
type Session struct {
	mu sync.Mutex

	ds     Datastore
	userID string

	training  *trainings.Training
	state     State
	startedAt time.Time

	slots      []ExerciseSlot
	order      *OrderManager
	completion *CompletionTracker
	extras     *ExtraSetManager
	buffer     *LogBuffer

	profileUnit   units.Unit
	unitOverrides map[int]units.Unit

	// past logs of the user, newest first, loaded at session start
	history []workoutlog.Log
}

func newSession(ctx context.Context, ds Datastore, userID string, trainingID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracking.session.new")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	training, err := ds.GetTraining(ctx, userID, trainingID)
	if err != nil {
		return nil, fmt.Errorf("get training: %w", err)
	}

	tes, err := ds.ListTrainingExercises(ctx, training.ID)
	if err != nil {
		return nil, fmt.Errorf("list training exercises: %w", err)
	}

	slots := make([]ExerciseSlot, 0, len(tes))
	for _, te := range tes {
		exercise, err := ds.GetExercise(ctx, userID, te.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("get exercise %d: %w", te.ExerciseID, err)
		}
		plannedSets, err := ds.ListPlannedSets(ctx, te.ID)
		if err != nil {
			return nil, fmt.Errorf("list planned sets of %d: %w", te.ID, err)
		}
		slots = append(slots, ExerciseSlot{
			TrainingExercise: te,
			Exercise:         *exercise,
			PlannedSets:      plannedSets,
		})
	}

	profile, err := ds.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	history, err := ds.ListWorkoutLogs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	session := &Session{
		ds:            ds,
		userID:        userID,
		training:      training,
		state:         StateActive,
		startedAt:     time.Now(),
		slots:         slots,
		completion:    NewCompletionTracker(),
		extras:        NewExtraSetManager(),
		buffer:        NewLogBuffer(),
		profileUnit:   profile.Unit,
		unitOverrides: make(map[int]units.Unit),
		history:       history,
	}
	session.order = NewOrderManager(func(ctx context.Context, trainingExerciseID, orderNum int) error {
		return ds.UpdateExerciseOrder(ctx, training.ID, trainingExerciseID, orderNum)
	})

	return session, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Training() trainings.Training {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.training
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Slots returns the exercise slots in their current order.
func (s *Session) Slots() []ExerciseSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]ExerciseSlot, len(s.slots))
	copy(slots, s.slots)
	return slots
}

func (s *Session) slot(trainingExerciseID int) (*ExerciseSlot, error) {
	for i := range s.slots {
		if s.slots[i].TrainingExercise.ID == trainingExerciseID {
			return &s.slots[i], nil
		}
	}
	return nil, ErrSlotNotFound
}

// UnitFor resolves the weight unit of one exercise slot: a session
// override wins, then the exercise's preferred unit, then the
// profile default.
func (s *Session) UnitFor(trainingExerciseID int) (units.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unitFor(trainingExerciseID)
}

func (s *Session) unitFor(trainingExerciseID int) (units.Unit, error) {
	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return "", err
	}
	if override, ok := s.unitOverrides[trainingExerciseID]; ok {
		return override, nil
	}
	if slot.Exercise.PreferredUnit != nil {
		return *slot.Exercise.PreferredUnit, nil
	}
	return s.profileUnit, nil
}

// OverrideUnit switches the display unit of one slot for the rest of
// the session. It does not touch the exercise or profile settings.
func (s *Session) OverrideUnit(trainingExerciseID int, unit units.Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}
	if !unit.Valid() {
		return fmt.Errorf("unknown weight unit: %q", unit)
	}
	if _, err := s.slot(trainingExerciseID); err != nil {
		return err
	}
	s.unitOverrides[trainingExerciseID] = unit
	return nil
}

func (s *Session) validateRef(slot *ExerciseSlot, ref SetRef) error {
	if !ref.Valid() {
		return ErrUnknownSet
	}
	switch ref.Kind {
	case SetKindPlanned:
		for _, ps := range slot.PlannedSets {
			if ps.ID == ref.PlannedSetID {
				return nil
			}
		}
	case SetKindExtra:
		if _, ok := s.extras.Get(slot.TrainingExercise.ID, ref.ExtraID); ok {
			return nil
		}
	}
	return ErrUnknownSet
}

// CompleteSet ticks a set off and buffers its log. Weight comes in
// the slot's current unit and is normalized to kilograms before
// buffering. Completing an already completed set overwrites the
// buffered values.
func (s *Session) CompleteSet(trainingExerciseID int, ref SetRef, reps int, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}
	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return err
	}
	if err := s.validateRef(slot, ref); err != nil {
		return err
	}
	if reps <= 0 || weight <= 0 {
		return fmt.Errorf("%w: reps %d, weight %f", ErrInvalidSetValues, reps, weight)
	}

	unit, err := s.unitFor(trainingExerciseID)
	if err != nil {
		return err
	}

	s.completion.Complete(trainingExerciseID, ref)
	s.buffer.Add(BufferedSet{
		TrainingExerciseID: trainingExerciseID,
		Ref:                ref,
		ExerciseID:         slot.TrainingExercise.ExerciseID,
		Reps:               reps,
		Weight:             units.ToKilograms(weight, unit),
		LoggedAt:           time.Now(),
	})
	return nil
}

// UncompleteSet takes the tick off a set and drops its buffered log,
// as if it was never completed.
func (s *Session) UncompleteSet(trainingExerciseID int, ref SetRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}
	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return err
	}
	if err := s.validateRef(slot, ref); err != nil {
		return err
	}

	s.completion.Uncomplete(trainingExerciseID, ref)
	s.buffer.RemoveMatching(trainingExerciseID, ref)
	return nil
}

func (s *Session) IsCompleted(trainingExerciseID int, ref SetRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completion.IsCompleted(trainingExerciseID, ref)
}

// AddExtraSet appends an unplanned set to an exercise slot, numbered
// right after the existing ones.
func (s *Session) AddExtraSet(trainingExerciseID int) (ExtraSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ExtraSet{}, ErrSessionNotActive
	}
	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return ExtraSet{}, err
	}

	return s.extras.Add(trainingExerciseID, len(slot.PlannedSets)), nil
}

// RemoveExtraSet drops an extra set together with its completion
// state and any buffered log, and closes the numbering gap.
func (s *Session) RemoveExtraSet(trainingExerciseID int, extraID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}
	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return err
	}

	if err := s.extras.Remove(trainingExerciseID, extraID, len(slot.PlannedSets)); err != nil {
		return err
	}

	ref := ExtraSetRef(extraID)
	s.completion.Forget(trainingExerciseID, ref)
	s.buffer.RemoveMatching(trainingExerciseID, ref)
	return nil
}

func (s *Session) ExtraSets(trainingExerciseID int) []ExtraSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extras.List(trainingExerciseID)
}

// Reorder moves the slot at position from to position to. The new
// order is applied locally right away and the ranks are persisted,
// a persistence failure rolls the local order back.
func (s *Session) Reorder(ctx context.Context, from, to int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracking.session.reorder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return ErrSessionNotActive
	}

	reordered, err := s.order.Move(ctx, s.slots, from, to)
	s.slots = reordered
	return err
}

// SetCount returns planned plus extra sets of one slot.
func (s *Session) SetCount(trainingExerciseID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return 0, err
	}
	return len(slot.PlannedSets) + s.extras.Count(trainingExerciseID), nil
}

// AllSetsCompleted reports whether every set of every slot, extras
// included, is ticked off. A session with no sets at all is never
// considered complete.
func (s *Session) AllSetsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, slot := range s.slots {
		teID := slot.TrainingExercise.ID
		count := len(slot.PlannedSets) + s.extras.Count(teID)
		total += count
		if s.completion.CompletedCount(teID) < count {
			return false
		}
	}
	return total > 0
}

// LastPerformedValues returns what the user did for this exercise on
// the most recent day it was trained, in the order the sets were
// performed. Weights are converted to the slot's current unit.
func (s *Session) LastPerformedValues(trainingExerciseID int) ([]SetValues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.slot(trainingExerciseID)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitFor(trainingExerciseID)
	if err != nil {
		return nil, err
	}

	var exerciseLogs []workoutlog.Log
	for _, l := range s.history {
		if l.ExerciseID == slot.TrainingExercise.ExerciseID {
			exerciseLogs = append(exerciseLogs, l)
		}
	}
	if len(exerciseLogs) == 0 {
		return nil, nil
	}

	day2logs := make(map[time.Time][]workoutlog.Log)
	var latestDay time.Time
	for _, l := range exerciseLogs {
		day := l.CreatedAt.Truncate(24 * time.Hour)
		day2logs[day] = append(day2logs[day], l)
		if day.After(latestDay) {
			latestDay = day
		}
	}

	lastDayLogs := day2logs[latestDay]
	sort.Slice(lastDayLogs, func(i, j int) bool {
		return lastDayLogs[i].CreatedAt.Before(lastDayLogs[j].CreatedAt)
	})

	values := make([]SetValues, 0, len(lastDayLogs))
	for _, l := range lastDayLogs {
		values = append(values, SetValues{
			Reps:   l.Reps,
			Weight: units.Convert(l.Weight, units.Kilograms, unit),
		})
	}
	return values, nil
}

// SuggestedSetValues prefills one set: setNumber is 1-based, pointing
// into the last performed day. When the user does more sets than
// last time, the last known set is suggested again.
func (s *Session) SuggestedSetValues(trainingExerciseID, setNumber int) (*SetValues, error) {
	values, err := s.LastPerformedValues(trainingExerciseID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || setNumber < 1 {
		return nil, nil
	}
	if setNumber > len(values) {
		v := values[len(values)-1]
		return &v, nil
	}
	v := values[setNumber-1]
	return &v, nil
}

// PendingLogs returns how many completed sets wait in the buffer.
func (s *Session) PendingLogs() int {
	return s.buffer.Pending()
}

// BufferedSets returns the buffer contents in completion order.
func (s *Session) BufferedSets() []BufferedSet {
	return s.buffer.Snapshot()
}

// Finish flushes the buffer and terminates the session. On partial
// failure the session stays active: already persisted sets are
// marked and a retry only writes the rest. The report always lists
// the outcome per set.
func (s *Session) Finish(ctx context.Context) (_ FlushReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracking.session.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return FlushReport{}, ErrSessionNotActive
	}
	s.state = StateFinishing

	flushedExercises := make(map[int]struct{})
	report, err := s.buffer.FlushAll(ctx, func(ctx context.Context, set BufferedSet) error {
		_, insertErr := s.ds.InsertWorkoutLog(ctx, workoutlog.Log{
			UserID:     s.userID,
			ExerciseID: set.ExerciseID,
			Reps:       set.Reps,
			Weight:     set.Weight,
			CreatedAt:  set.LoggedAt,
		})
		if insertErr == nil {
			flushedExercises[set.ExerciseID] = struct{}{}
		}
		return insertErr
	})

	// cached history of everything that got persisted is stale now,
	// also on a partial flush
	for exerciseID := range flushedExercises {
		s.ds.InvalidateExerciseHistory(s.userID, exerciseID)
	}

	if err != nil {
		log.Errorf("session finish: %d of %d sets failed to persist: %s",
			report.Failed, report.Failed+report.Flushed, err)
		s.state = StateActive
		return report, err
	}

	s.state = StateTerminated
	return report, nil
}

// Cancel terminates the session and throws away everything not yet
// persisted. It returns the number of discarded set logs.
func (s *Session) Cancel() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return 0
	}
	discarded := s.buffer.Clear()
	s.state = StateTerminated
	return discarded
}
