package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrProgressionNotFound = errors.New("no working weight for exercise")

// ProgressionRecord is the working weight of an exercise: the heaviest set of
// the last session it was logged in. Unlike personal records it moves down too.
type ProgressionRecord struct {
	ExerciseID    string    `json:"exerciseId"`
	WorkingWeight float64   `json:"workingWeight"`
	Reps          int       `json:"reps"`
	SessionID     string    `json:"sessionId"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type progressionStore interface {
	Get(ctx context.Context, exerciseID string) (*ProgressionRecord, error)
	Upsert(ctx context.Context, record ProgressionRecord) error
}

type Progression struct {
	store progressionStore
	clock clock.Clock
}

func NewProgression(store progressionStore, clk clock.Clock) *Progression {
	return &Progression{
		store: store,
		clock: clk,
	}
}

// WorkingSets picks the heaviest set of every exercise, more reps winning a
// weight tie. Result is ordered by exercise id.
func WorkingSets(sets []LoggedSet) []LoggedSet {
	heaviest := make(map[string]LoggedSet)
	for _, s := range sets {
		if s.ExerciseID == "" {
			continue
		}
		current, ok := heaviest[s.ExerciseID]
		if !ok || s.Weight > current.Weight || (s.Weight == current.Weight && s.Reps > current.Reps) {
			heaviest[s.ExerciseID] = s
		}
	}

	working := make([]LoggedSet, 0, len(heaviest))
	for _, s := range heaviest {
		working = append(working, s)
	}
	sort.Slice(working, func(i, j int) bool {
		return working[i].ExerciseID < working[j].ExerciseID
	})
	return working
}

// Update overwrites the working weight of every exercise in the session.
func (p *Progression) Update(ctx context.Context, sessionID string, sets []LoggedSet) (_ []ProgressionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	now := p.clock.Now()
	updated := make([]ProgressionRecord, 0)
	for _, s := range WorkingSets(sets) {
		record := ProgressionRecord{
			ExerciseID:    s.ExerciseID,
			WorkingWeight: s.Weight,
			Reps:          s.Reps,
			SessionID:     sessionID,
			UpdatedAt:     now,
		}
		if err := p.store.Upsert(ctx, record); err != nil {
			return updated, fmt.Errorf("upsert working weight of %s: %w", s.ExerciseID, err)
		}
		updated = append(updated, record)
	}
	return updated, nil
}

func (p *Progression) ForExercise(ctx context.Context, exerciseID string) (*ProgressionRecord, error) {
	return p.store.Get(ctx, exerciseID)
}
