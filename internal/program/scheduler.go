package program

import (
	"context"
	"fmt"

	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type programGetter interface {
	GetProgram(ctx context.Context, id string) (*Program, error)
}

type templateGetter interface {
	Template(ctx context.Context, key string) ([]TemplateExercise, error)
}

type substitutionReader interface {
	GetAllForDay(ctx context.Context, dayNumber int) (map[string]string, error)
}

// Scheduler resolves program days into template slots and exercise lists.
// It never writes; output depends only on the catalog and current substitutions.
type Scheduler struct {
	programs      programGetter
	templates     templateGetter
	substitutions substitutionReader
}

func NewScheduler(programs programGetter, templates templateGetter, substitutions substitutionReader) *Scheduler {
	return &Scheduler{
		programs:      programs,
		templates:     templates,
		substitutions: substitutions,
	}
}

func (s *Scheduler) ResolveDay(ctx context.Context, programID string, dayNumber int) (_ *ResolvedDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduler.resolve-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.Int("day_number", dayNumber))

	p, err := s.programs.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get program %s: %w", programID, err)
	}

	resolved, err := p.Schedule.ResolveDay(dayNumber)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// ResolveExercises returns the template's exercises for the given day, with
// the day's substitutions applied.
func (s *Scheduler) ResolveExercises(ctx context.Context, templateKey string, dayNumber int) (_ []ExerciseRef, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "scheduler.resolve-exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template_key", templateKey))
	span.SetAttributes(attribute.Int("day_number", dayNumber))

	if dayNumber < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayNumber, dayNumber)
	}

	base, err := s.templates.Template(ctx, templateKey)
	if err != nil {
		return nil, fmt.Errorf("get template %s: %w", templateKey, err)
	}

	subs, err := s.substitutions.GetAllForDay(ctx, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("get substitutions for day %d: %w", dayNumber, err)
	}

	return ApplySubstitutions(templateKey, base, subs), nil
}

// ApplySubstitutions replaces exercises found in subs (original -> substitute)
// keeping their order index. Substituted rows get an id derived from the
// template, the substitute and the order index.
func ApplySubstitutions(templateKey string, base []TemplateExercise, subs map[string]string) []ExerciseRef {
	refs := make([]ExerciseRef, 0, len(base))
	for _, te := range base {
		ref := ExerciseRef{
			ID:          te.ID,
			TemplateKey: templateKey,
			ExerciseID:  te.ExerciseID,
			OrderIndex:  te.OrderIndex,
			Sets:        te.Sets,
			Reps:        te.Reps,
		}
		if substitute, ok := subs[te.ExerciseID]; ok && substitute != "" {
			ref.ID = SubstitutedID(templateKey, substitute, te.OrderIndex)
			ref.ExerciseID = substitute
			ref.Substituted = true
			ref.OriginalExerciseID = te.ExerciseID
		}
		refs = append(refs, ref)
	}
	return refs
}

func SubstitutedID(templateKey, substituteID string, orderIndex int) string {
	return fmt.Sprintf("%s_sub_%s_%d", templateKey, substituteID, orderIndex)
}
