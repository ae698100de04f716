package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/telemetry/tracing"
	"github.com/2beens/programtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const enrollmentColumns = `id, user_id, program_id, enrolled_at, started_at, current_day, status,
	estimated_completion_date, total_days_completed, total_days_skipped`

// dbtx is satisfied by both the pool and a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inTx runs fn in a transaction, committing only when fn succeeds.
func inTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

type EnrollmentRepo struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepo(db *pgxpool.Pool) *EnrollmentRepo {
	return &EnrollmentRepo{
		db: db,
	}
}

func scanEnrollment(row pgx.Row) (*enrollment.Enrollment, error) {
	e := &enrollment.Enrollment{}
	if err := row.Scan(
		&e.ID, &e.UserID, &e.ProgramID, &e.EnrolledAt, &e.StartedAt, &e.CurrentDay, &e.Status,
		&e.EstimatedCompletionDate, &e.TotalDaysCompleted, &e.TotalDaysSkipped,
	); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EnrollmentRepo) GetByID(ctx context.Context, id int64) (_ *enrollment.Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	e, err := scanEnrollment(r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollment WHERE id = $1;`,
		id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}
	return e, nil
}

func (r *EnrollmentRepo) GetActiveForUser(ctx context.Context, userID string) (_ *enrollment.Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.get-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	e, err := scanEnrollment(r.db.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollment
			WHERE user_id = $1 AND status IN ('ENROLLED', 'IN_PROGRESS', 'PAUSED')
			ORDER BY id DESC
			LIMIT 1;`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, enrollment.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan enrollment: %w", err)
	}
	return e, nil
}

func (r *EnrollmentRepo) Insert(ctx context.Context, e enrollment.Enrollment) (_ *enrollment.Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := insertEnrollment(ctx, r.db, e)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("enrollment.id", created.ID))
	return created, nil
}

func insertEnrollment(ctx context.Context, q dbtx, e enrollment.Enrollment) (*enrollment.Enrollment, error) {
	err := q.QueryRow(ctx,
		`INSERT INTO enrollment
				(user_id, program_id, enrolled_at, started_at, current_day, status,
				 estimated_completion_date, total_days_completed, total_days_skipped)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		e.UserID, e.ProgramID, e.EnrolledAt, e.StartedAt, e.CurrentDay, e.Status,
		e.EstimatedCompletionDate, e.TotalDaysCompleted, e.TotalDaysSkipped,
	).Scan(&e.ID)
	if pkg.IsUniqueViolationError(err) {
		return nil, fmt.Errorf("%w: user %s already has an active enrollment", enrollment.ErrInvariantViolation, e.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}
	return &e, nil
}

// Update writes e, provided the stored row still has the expected status.
func (r *EnrollmentRepo) Update(ctx context.Context, e *enrollment.Enrollment, expected enrollment.Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", e.ID))

	return updateEnrollment(ctx, r.db, e, expected)
}

func updateEnrollment(ctx context.Context, q dbtx, e *enrollment.Enrollment, expected enrollment.Status) error {
	tag, err := q.Exec(ctx,
		`UPDATE enrollment SET
				started_at = $1, current_day = $2, status = $3, estimated_completion_date = $4,
				total_days_completed = $5, total_days_skipped = $6
			WHERE id = $7 AND status = $8;`,
		e.StartedAt, e.CurrentDay, e.Status, e.EstimatedCompletionDate,
		e.TotalDaysCompleted, e.TotalDaysSkipped, e.ID, expected,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return missingOrChanged(ctx, q, e.ID, expected)
	}
	return nil
}

// missingOrChanged explains why a status-guarded write touched no rows.
func missingOrChanged(ctx context.Context, q dbtx, id int64, expected enrollment.Status) error {
	var current enrollment.Status
	err := q.QueryRow(ctx, `SELECT status FROM enrollment WHERE id = $1;`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("get enrollment status: %w", err)
	}
	return fmt.Errorf("%w: %d is %s, expected %s", enrollment.ErrEnrollmentChanged, id, current, expected)
}

func (r *EnrollmentRepo) UpdateCurrentDay(ctx context.Context, id int64, newDay int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.update-current-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))
	span.SetAttributes(attribute.Int("current_day", newDay))

	tag, err := r.db.Exec(ctx, `UPDATE enrollment SET current_day = $1 WHERE id = $2;`, newDay, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	return nil
}

func (r *EnrollmentRepo) UpdateStatus(ctx context.Context, id int64, status enrollment.Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.update-status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))
	span.SetAttributes(attribute.String("status", status.String()))

	tag, err := r.db.Exec(ctx, `UPDATE enrollment SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	return nil
}

func (r *EnrollmentRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to enrollment.Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.update-status-from")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	tag, err := r.db.Exec(ctx, `UPDATE enrollment SET status = $1 WHERE id = $2 AND status = $3;`, to, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return missingOrChanged(ctx, r.db, id, from)
	}
	return nil
}

func (r *EnrollmentRepo) DeactivateAllForUser(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.deactivate-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	return deactivateAllForUser(ctx, r.db, userID)
}

func deactivateAllForUser(ctx context.Context, q dbtx, userID string) (int, error) {
	tag, err := q.Exec(ctx,
		`UPDATE enrollment SET status = 'CANCELLED'
			WHERE user_id = $1 AND status IN ('ENROLLED', 'IN_PROGRESS', 'PAUSED');`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ReplaceActiveForUser cancels the user's active enrollments and inserts e
// in one transaction.
func (r *EnrollmentRepo) ReplaceActiveForUser(ctx context.Context, e enrollment.Enrollment) (_ *enrollment.Enrollment, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.replace-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", e.UserID))

	var (
		created     *enrollment.Enrollment
		deactivated int
	)
	err = inTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		if deactivated, err = deactivateAllForUser(ctx, tx, e.UserID); err != nil {
			return fmt.Errorf("deactivate: %w", err)
		}
		created, err = insertEnrollment(ctx, tx, e)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	span.SetAttributes(attribute.Int64("enrollment.id", created.ID))
	return created, deactivated, nil
}

func (r *EnrollmentRepo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.enrollment.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM enrollment WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	return nil
}
