package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type ProgramDayRepo struct {
	db *pgxpool.Pool
}

func NewProgramDayRepo(db *pgxpool.Pool) *ProgramDayRepo {
	return &ProgramDayRepo{
		db: db,
	}
}

func (r *ProgramDayRepo) GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (_ *program.ProgramDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program-day.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.Int("day_number", dayNumber))

	d := &program.ProgramDay{}
	err = r.db.QueryRow(ctx,
		`SELECT id, program_id, day_number, name, day_type, template_key, description
			FROM program_day
			WHERE program_id = $1 AND day_number = $2;`,
		programID, dayNumber,
	).Scan(&d.ID, &d.ProgramID, &d.DayNumber, &d.Name, &d.DayType, &d.TemplateKey, &d.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%d", program.ErrDayNotFound, programID, dayNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("scan program day: %w", err)
	}
	return d, nil
}

func (r *ProgramDayRepo) GetTotalDayCount(ctx context.Context, programID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program-day.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM program_day WHERE program_id = $1;`,
		programID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count program days: %w", err)
	}
	return count, nil
}

// InsertDays writes the whole batch in one transaction.
func (r *ProgramDayRepo) InsertDays(ctx context.Context, days []program.ProgramDay) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.program-day.insert-days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", len(days)))

	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, d := range days {
			if _, err := tx.Exec(ctx,
				`INSERT INTO program_day (program_id, day_number, name, day_type, template_key, description)
					VALUES ($1, $2, $3, $4, $5, $6);`,
				d.ProgramID, d.DayNumber, d.Name, d.DayType, d.TemplateKey, d.Description,
			); err != nil {
				return fmt.Errorf("insert day %d of %s: %w", d.DayNumber, d.ProgramID, err)
			}
		}
		return nil
	})
}
