package workoutlog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/Olii83/gym-tracker/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour            = 60 * 60
	historyCacheExpire = oneHour * 1
)

// ExerciseHistory represents the history of an exercise
// so that, for each day, we get the average weight and reps per set.
type ExerciseHistory struct {
	ExerciseID int                         `json:"exerciseId"`
	Stats      map[time.Time]ExerciseStats `json:"stats"`
}

type ExerciseStats struct {
	AvgWeight float64 `json:"avgWeight"`
	AvgReps   int     `json:"avgReps"`
	Sets      int     `json:"sets"`
}

// PersonalRecord is the all-time best for one exercise.
type PersonalRecord struct {
	ExerciseID int     `json:"exerciseId"`
	MaxWeight  float64 `json:"maxWeight"`
	// RepsAtMax are the reps performed in the heaviest set
	RepsAtMax int `json:"repsAtMax"`
	// Estimated1RM uses the Epley formula
	Estimated1RM float64 `json:"estimated1RM"`
	TotalSets    int     `json:"totalSets"`
}

type Analyzer struct {
	repo  logsRepo
	cache *freecache.Cache
}

func NewAnalyzer(repo logsRepo) *Analyzer {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &Analyzer{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (a *Analyzer) ExerciseHistory(
	ctx context.Context,
	userID string,
	exerciseID int,
) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workoutlog.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	cacheKey := fmt.Sprintf("history::%s::%d", userID, exerciseID)
	if historyBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		history := &ExerciseHistory{}
		if err = json.Unmarshal(historyBytes, history); err == nil {
			return history, nil
		}
		log.Errorf("failed to unmarshal exercise history from cache: %s", err)
	}

	logs, err := a.repo.List(ctx, ListParams{
		UserID:     userID,
		ExerciseID: exerciseID,
	})
	if err != nil {
		return nil, err
	}

	history := &ExerciseHistory{
		ExerciseID: exerciseID,
		Stats:      make(map[time.Time]ExerciseStats),
	}

	day2logs := make(map[time.Time][]Log)
	for _, l := range logs {
		day := l.CreatedAt.Truncate(24 * time.Hour)
		day2logs[day] = append(day2logs[day], l)
	}

	for day, dayLogs := range day2logs {
		var totalWeight float64
		var totalReps int
		for _, l := range dayLogs {
			totalWeight += l.Weight
			totalReps += l.Reps
		}
		history.Stats[day] = ExerciseStats{
			AvgWeight: totalWeight / float64(len(dayLogs)),
			AvgReps:   totalReps / len(dayLogs),
			Sets:      len(dayLogs),
		}
	}

	if historyBytes, err := json.Marshal(history); err == nil {
		if err := a.cache.Set([]byte(cacheKey), historyBytes, historyCacheExpire); err != nil {
			log.Errorf("failed to cache exercise history: %s", err)
		}
	}

	return history, nil
}

func (a *Analyzer) PersonalRecord(
	ctx context.Context,
	userID string,
	exerciseID int,
) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workoutlog.personalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	logs, err := a.repo.List(ctx, ListParams{
		UserID:     userID,
		ExerciseID: exerciseID,
	})
	if err != nil {
		return nil, err
	}

	record := &PersonalRecord{
		ExerciseID: exerciseID,
		TotalSets:  len(logs),
	}
	for _, l := range logs {
		if l.Weight > record.MaxWeight {
			record.MaxWeight = l.Weight
			record.RepsAtMax = l.Reps
		}
		est := l.Weight * (1 + float64(l.Reps)/30)
		if est > record.Estimated1RM {
			record.Estimated1RM = est
		}
	}
	record.Estimated1RM = math.Round(record.Estimated1RM*100) / 100

	return record, nil
}

// InvalidateHistory drops the cached history of one exercise, called
// after new logs are persisted.
func (a *Analyzer) InvalidateHistory(userID string, exerciseID int) {
	cacheKey := fmt.Sprintf("history::%s::%d", userID, exerciseID)
	a.cache.Del([]byte(cacheKey))
}

// InvalidateAllHistory drops every cached history entry. Used after
// edits and deletes, where the affected exercise is not known.
func (a *Analyzer) InvalidateAllHistory() {
	a.cache.Clear()
}
