package postgres

import (
	"context"

	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// DayJournal writes a day resolution (the day_completion row and the
// enrollment it advanced) in one transaction.
type DayJournal struct {
	db *pgxpool.Pool
}

func NewDayJournal(db *pgxpool.Pool) *DayJournal {
	return &DayJournal{
		db: db,
	}
}

func (j *DayJournal) ResolveDay(ctx context.Context, c enrollment.DayCompletion, next enrollment.Enrollment, expected enrollment.Status) (_ *enrollment.DayCompletion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.journal.resolve-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", next.ID))
	span.SetAttributes(attribute.String("status", c.Status.String()))

	var appended *enrollment.DayCompletion
	err = inTx(ctx, j.db, func(tx pgx.Tx) error {
		// guarded update first, so a stale resolution fails before anything is appended
		if err := updateEnrollment(ctx, tx, &next, expected); err != nil {
			return err
		}
		var err error
		appended, err = appendCompletion(ctx, tx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}
