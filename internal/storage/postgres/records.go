package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/programtracker/internal/records"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type RecordRepo struct {
	db *pgxpool.Pool
}

func NewRecordRepo(db *pgxpool.Pool) *RecordRepo {
	return &RecordRepo{
		db: db,
	}
}

func (r *RecordRepo) GetBest(ctx context.Context, exerciseID string, recordType records.RecordType) (_ float64, found bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.record.get-best")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))
	span.SetAttributes(attribute.String("type", recordType.String()))

	var best *float64
	if err := r.db.QueryRow(ctx,
		`SELECT MAX(value) FROM personal_record WHERE exercise_id = $1 AND type = $2;`,
		exerciseID, recordType,
	).Scan(&best); err != nil {
		return 0, false, fmt.Errorf("scan best: %w", err)
	}
	if best == nil {
		return 0, false, nil
	}
	return *best, true, nil
}

func (r *RecordRepo) Insert(ctx context.Context, record records.PersonalRecord) (_ *records.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.record.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", record.ExerciseID))
	span.SetAttributes(attribute.String("type", record.Type.String()))

	err = r.db.QueryRow(ctx,
		`INSERT INTO personal_record (exercise_id, type, value, session_id, date)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		record.ExerciseID, record.Type, record.Value, record.SessionID, record.Date,
	).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	return &record, nil
}

// GetCurrent returns the best row per record type of the exercise.
func (r *RecordRepo) GetCurrent(ctx context.Context, exerciseID string) (_ []records.PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.record.get-current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (type) id, exercise_id, type, value, session_id, date
			FROM personal_record
			WHERE exercise_id = $1
			ORDER BY type, value DESC, id;`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	byType := make(map[records.RecordType]records.PersonalRecord)
	for rows.Next() {
		var pr records.PersonalRecord
		if err := rows.Scan(&pr.ID, &pr.ExerciseID, &pr.Type, &pr.Value, &pr.SessionID, &pr.Date); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		byType[pr.Type] = pr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	current := make([]records.PersonalRecord, 0, len(byType))
	for _, t := range records.RecordTypes {
		if pr, ok := byType[t]; ok {
			current = append(current, pr)
		}
	}
	return current, nil
}

type SetLogRepo struct {
	db *pgxpool.Pool
}

func NewSetLogRepo(db *pgxpool.Pool) *SetLogRepo {
	return &SetLogRepo{
		db: db,
	}
}

func (r *SetLogRepo) Append(ctx context.Context, sets []records.LoggedSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set-log.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("sets", len(sets)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	for _, s := range sets {
		if _, err = tx.Exec(ctx,
			`INSERT INTO logged_set (session_id, exercise_id, set_number, weight, reps, rpe, logged_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			s.SessionID, s.ExerciseID, s.SetNumber, s.Weight, s.Reps, s.RPE, s.LoggedAt,
		); err != nil {
			return fmt.Errorf("insert set %d of %s: %w", s.SetNumber, s.ExerciseID, err)
		}
	}
	return nil
}

// GetSetsBetween returns sets logged in [from, to], both ends inclusive.
func (r *SetLogRepo) GetSetsBetween(ctx context.Context, from, to time.Time) (_ []records.LoggedSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.set-log.get-between")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	rows, err := r.db.Query(ctx,
		`SELECT id, session_id, exercise_id, set_number, weight, reps, rpe, logged_at
			FROM logged_set
			WHERE logged_at >= $1 AND logged_at <= $2
			ORDER BY logged_at;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sets := make([]records.LoggedSet, 0)
	for rows.Next() {
		var s records.LoggedSet
		if err := rows.Scan(&s.ID, &s.SessionID, &s.ExerciseID, &s.SetNumber, &s.Weight, &s.Reps, &s.RPE, &s.LoggedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return sets, nil
}
