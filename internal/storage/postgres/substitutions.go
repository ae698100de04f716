package postgres

import (
	"context"
	"fmt"

	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type SubstitutionRepo struct {
	db *pgxpool.Pool
}

func NewSubstitutionRepo(db *pgxpool.Pool) *SubstitutionRepo {
	return &SubstitutionRepo{
		db: db,
	}
}

func (r *SubstitutionRepo) GetAllForDay(ctx context.Context, dayNumber int) (_ map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.substitution.get-all-for-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day_number", dayNumber))

	rows, err := r.db.Query(ctx,
		`SELECT original_exercise_id, substitute_exercise_id FROM day_substitution WHERE program_day = $1;`,
		dayNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	subs := make(map[string]string)
	for rows.Next() {
		var original, substitute string
		if err := rows.Scan(&original, &substitute); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		subs[original] = substitute
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return subs, nil
}

func (r *SubstitutionRepo) Upsert(ctx context.Context, sub program.Substitution) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.substitution.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day_number", sub.ProgramDay))

	_, err = r.db.Exec(ctx,
		`INSERT INTO day_substitution (program_day, original_exercise_id, substitute_exercise_id, created_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (program_day, original_exercise_id)
			DO UPDATE SET substitute_exercise_id = EXCLUDED.substitute_exercise_id, created_at = EXCLUDED.created_at;`,
		sub.ProgramDay, sub.OriginalExerciseID, sub.SubstituteExerciseID, sub.CreatedAt,
	)
	return err
}

func (r *SubstitutionRepo) Delete(ctx context.Context, dayNumber int, originalExerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.substitution.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day_number", dayNumber))
	span.SetAttributes(attribute.String("original", originalExerciseID))

	_, err = r.db.Exec(ctx,
		`DELETE FROM day_substitution WHERE program_day = $1 AND original_exercise_id = $2;`,
		dayNumber, originalExerciseID,
	)
	return err
}
