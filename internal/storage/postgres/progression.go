package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/programtracker/internal/records"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ProgressionRepo struct {
	db *pgxpool.Pool
}

func NewProgressionRepo(db *pgxpool.Pool) *ProgressionRepo {
	return &ProgressionRepo{
		db: db,
	}
}

func (r *ProgressionRepo) Get(ctx context.Context, exerciseID string) (_ *records.ProgressionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	var record records.ProgressionRecord
	err = r.db.QueryRow(ctx,
		`SELECT exercise_id, working_weight, reps, session_id, updated_at
			FROM progression_record WHERE exercise_id = $1;`,
		exerciseID,
	).Scan(&record.ExerciseID, &record.WorkingWeight, &record.Reps, &record.SessionID, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, records.ErrProgressionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan working weight: %w", err)
	}
	return &record, nil
}

func (r *ProgressionRepo) Upsert(ctx context.Context, record records.ProgressionRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", record.ExerciseID))

	_, err = r.db.Exec(ctx,
		`INSERT INTO progression_record (exercise_id, working_weight, reps, session_id, updated_at)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (exercise_id)
			DO UPDATE SET working_weight = EXCLUDED.working_weight, reps = EXCLUDED.reps,
				session_id = EXCLUDED.session_id, updated_at = EXCLUDED.updated_at;`,
		record.ExerciseID, record.WorkingWeight, record.Reps, record.SessionID, record.UpdatedAt,
	)
	return err
}
