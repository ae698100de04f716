package program

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Substitution replaces one exercise with another on a single program day.
// Keyed by (ProgramDay, OriginalExerciseID); the last write wins.
type Substitution struct {
	ProgramDay           int       `json:"programDay"`
	OriginalExerciseID   string    `json:"originalExerciseId"`
	SubstituteExerciseID string    `json:"substituteExerciseId"`
	CreatedAt            time.Time `json:"createdAt"`
}

type substitutionStore interface {
	GetAllForDay(ctx context.Context, dayNumber int) (map[string]string, error)
	Upsert(ctx context.Context, sub Substitution) error
	Delete(ctx context.Context, dayNumber int, originalExerciseID string) error
}

type Substitutions struct {
	store substitutionStore
	clock clock.Clock
}

func NewSubstitutions(store substitutionStore, clk clock.Clock) *Substitutions {
	return &Substitutions{
		store: store,
		clock: clk,
	}
}

func (s *Substitutions) Set(ctx context.Context, dayNumber int, originalID, substituteID string) (_ *Substitution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "substitutions.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day_number", dayNumber))
	span.SetAttributes(attribute.String("original", originalID))
	span.SetAttributes(attribute.String("substitute", substituteID))

	if dayNumber < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayNumber, dayNumber)
	}
	if originalID == "" || substituteID == "" {
		return nil, fmt.Errorf("%w: original or substitute exercise empty", ErrInvalidSubstitution)
	}
	if originalID == substituteID {
		return nil, fmt.Errorf("%w: exercise cannot substitute itself", ErrInvalidSubstitution)
	}

	sub := Substitution{
		ProgramDay:           dayNumber,
		OriginalExerciseID:   originalID,
		SubstituteExerciseID: substituteID,
		CreatedAt:            s.clock.Now(),
	}
	if err := s.store.Upsert(ctx, sub); err != nil {
		return nil, fmt.Errorf("upsert substitution: %w", err)
	}

	log.Debugf("day %d: substituted [%s] with [%s]", dayNumber, originalID, substituteID)
	return &sub, nil
}

func (s *Substitutions) Clear(ctx context.Context, dayNumber int, originalID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "substitutions.clear")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day_number", dayNumber))
	span.SetAttributes(attribute.String("original", originalID))

	if dayNumber < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDayNumber, dayNumber)
	}
	if err := s.store.Delete(ctx, dayNumber, originalID); err != nil {
		return fmt.Errorf("delete substitution: %w", err)
	}
	log.Debugf("day %d: substitution for [%s] cleared", dayNumber, originalID)
	return nil
}

func (s *Substitutions) ForDay(ctx context.Context, dayNumber int) (map[string]string, error) {
	if dayNumber < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayNumber, dayNumber)
	}
	return s.store.GetAllForDay(ctx, dayNumber)
}
