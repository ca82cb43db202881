package tracking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/multierr"
)

// BufferedSet is one completed set waiting to be persisted. Weight
// is already normalized to kilograms.
type BufferedSet struct {
	TrainingExerciseID int       `json:"trainingExerciseId"`
	Ref                SetRef    `json:"ref"`
	ExerciseID         int       `json:"exerciseId"`
	Reps               int       `json:"reps"`
	Weight             float64   `json:"weight"`
	LoggedAt           time.Time `json:"loggedAt"`

	flushed bool
}

// FlushOutcome reports the result of persisting one buffered set.
type FlushOutcome struct {
	TrainingExerciseID int    `json:"trainingExerciseId"`
	Ref                SetRef `json:"ref"`
	Err                error  `json:"-"`
	Error              string `json:"error,omitempty"`
}

type FlushReport struct {
	Flushed  int            `json:"flushed"`
	Failed   int            `json:"failed"`
	Outcomes []FlushOutcome `json:"outcomes"`
}

// LogBuffer collects completed sets during a session so nothing is
// written to the database until the session finishes. Entries are
// keyed by set identity, re-completing a set overwrites its entry
// instead of producing a duplicate.
type LogBuffer struct {
	mu      sync.Mutex
	order   []string
	entries map[string]*BufferedSet
}

func NewLogBuffer() *LogBuffer {
	return &LogBuffer{
		entries: make(map[string]*BufferedSet),
	}
}

func (b *LogBuffer) Add(set BufferedSet) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := setKey(set.TrainingExerciseID, set.Ref)
	if _, ok := b.entries[key]; !ok {
		b.order = append(b.order, key)
	}
	b.entries[key] = &set
}

// RemoveMatching drops the buffered entry of one set, if present.
func (b *LogBuffer) RemoveMatching(trainingExerciseID int, ref SetRef) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := setKey(trainingExerciseID, ref)
	if _, ok := b.entries[key]; !ok {
		return false
	}
	delete(b.entries, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Pending returns the number of entries not yet persisted.
func (b *LogBuffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending := 0
	for _, e := range b.entries {
		if !e.flushed {
			pending++
		}
	}
	return pending
}

// Snapshot returns the buffered entries in insertion order.
func (b *LogBuffer) Snapshot() []BufferedSet {
	b.mu.Lock()
	defer b.mu.Unlock()

	sets := make([]BufferedSet, 0, len(b.order))
	for _, key := range b.order {
		sets = append(sets, *b.entries[key])
	}
	return sets
}

// FlushAll persists all pending entries through the insert func,
// concurrently. Entries persisted on an earlier attempt are skipped,
// so a retry after partial failure cannot insert duplicates. Once
// every entry is persisted the buffer is emptied.
func (b *LogBuffer) FlushAll(
	ctx context.Context,
	insert func(ctx context.Context, set BufferedSet) error,
) (FlushReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var (
		wg          sync.WaitGroup
		outcomesMux sync.Mutex
		report      FlushReport
		errs        []error
	)

	for _, key := range b.order {
		entry := b.entries[key]
		if entry.flushed {
			continue
		}
		wg.Add(1)
		go func(entry *BufferedSet) {
			defer wg.Done()

			err := insert(ctx, *entry)

			outcomesMux.Lock()
			defer outcomesMux.Unlock()
			outcome := FlushOutcome{
				TrainingExerciseID: entry.TrainingExerciseID,
				Ref:                entry.Ref,
			}
			if err != nil {
				outcome.Err = err
				outcome.Error = err.Error()
				report.Failed++
				errs = append(errs, err)
			} else {
				entry.flushed = true
				report.Flushed++
			}
			report.Outcomes = append(report.Outcomes, outcome)
		}(entry)
	}
	wg.Wait()

	if report.Failed == 0 {
		b.order = nil
		b.entries = make(map[string]*BufferedSet)
	}

	return report, multierr.Combine(errs...)
}

// Clear discards everything and returns how many pending entries
// were thrown away.
func (b *LogBuffer) Clear() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending := 0
	for _, e := range b.entries {
		if !e.flushed {
			pending++
		}
	}
	b.order = nil
	b.entries = make(map[string]*BufferedSet)
	return pending
}
