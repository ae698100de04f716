package postgres

import (
	"context"
	"fmt"

	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// CompletionRepo never updates rows, only appends and purges.
type CompletionRepo struct {
	db *pgxpool.Pool
}

func NewCompletionRepo(db *pgxpool.Pool) *CompletionRepo {
	return &CompletionRepo{
		db: db,
	}
}

func (r *CompletionRepo) Append(ctx context.Context, c enrollment.DayCompletion) (_ *enrollment.DayCompletion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completion.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", c.EnrollmentID))
	span.SetAttributes(attribute.String("status", c.Status.String()))

	return appendCompletion(ctx, r.db, c)
}

func appendCompletion(ctx context.Context, q dbtx, c enrollment.DayCompletion) (*enrollment.DayCompletion, error) {
	err := q.QueryRow(ctx,
		`INSERT INTO day_completion
				(enrollment_id, program_day_id, program_day_number, status, completion_date, workout_session_id, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		c.EnrollmentID, c.ProgramDayID, c.ProgramDayNumber, c.Status, c.CompletionDate, c.WorkoutSessionID, c.Notes,
	).Scan(&c.ID)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, c.EnrollmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert completion: %w", err)
	}
	return &c, nil
}

func (r *CompletionRepo) GetAllForEnrollment(ctx context.Context, enrollmentID int64) (_ []enrollment.DayCompletion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completion.get-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", enrollmentID))

	rows, err := r.db.Query(ctx,
		`SELECT id, enrollment_id, program_day_id, program_day_number, status, completion_date, workout_session_id, notes
			FROM day_completion
			WHERE enrollment_id = $1
			ORDER BY id;`,
		enrollmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	completions := make([]enrollment.DayCompletion, 0)
	for rows.Next() {
		var c enrollment.DayCompletion
		if err := rows.Scan(
			&c.ID, &c.EnrollmentID, &c.ProgramDayID, &c.ProgramDayNumber,
			&c.Status, &c.CompletionDate, &c.WorkoutSessionID, &c.Notes,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return completions, nil
}

func (r *CompletionRepo) DeleteAllForEnrollment(ctx context.Context, enrollmentID int64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completion.delete-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", enrollmentID))

	tag, err := r.db.Exec(ctx, `DELETE FROM day_completion WHERE enrollment_id = $1;`, enrollmentID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
