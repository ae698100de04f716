package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type Summary struct {
	EnrollmentID       int64   `json:"enrollmentId"`
	TotalDays          int     `json:"totalDays"`
	CompletedDays      int     `json:"completedDays"`
	SkippedDays        int     `json:"skippedDays"`
	PartialDays        int     `json:"partialDays"`
	CurrentStreak      int     `json:"currentStreak"`
	LongestStreak      int     `json:"longestStreak"`
	AvgWorkoutsPerWeek float64 `json:"avgWorkoutsPerWeek"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

type enrollmentGetter interface {
	GetByID(ctx context.Context, id int64) (*enrollment.Enrollment, error)
}

type dayCounter interface {
	GetTotalDayCount(ctx context.Context, programID string) (int, error)
}

type completionLister interface {
	GetAllForEnrollment(ctx context.Context, enrollmentID int64) ([]enrollment.DayCompletion, error)
}

type Aggregator struct {
	enrollments enrollmentGetter
	days        dayCounter
	completions completionLister
	clock       clock.Clock
}

func NewAggregator(enrollments enrollmentGetter, days dayCounter, completions completionLister, clk clock.Clock) *Aggregator {
	return &Aggregator{
		enrollments: enrollments,
		days:        days,
		completions: completions,
		clock:       clk,
	}
}

func (a *Aggregator) Summarize(ctx context.Context, enrollmentID int64) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.summarize")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", enrollmentID))

	e, err := a.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	totalDays, err := a.days.GetTotalDayCount(ctx, e.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("get program day count: %w", err)
	}

	completions, err := a.completions.GetAllForEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("get completions: %w", err)
	}

	summary := Summarize(*e, completions, totalDays, a.clock.Now())
	return &summary, nil
}

// Summarize folds the completion log into progress statistics. Day counts come
// from the log itself, not from the enrollment's counters.
func Summarize(e enrollment.Enrollment, completions []enrollment.DayCompletion, totalDays int, now time.Time) Summary {
	summary := Summary{
		EnrollmentID: e.ID,
		TotalDays:    totalDays,
	}

	var completedDates []time.Time
	for _, c := range completions {
		switch c.Status {
		case enrollment.CompletionCompleted:
			summary.CompletedDays++
			completedDates = append(completedDates, c.CompletionDate)
		case enrollment.CompletionSkipped:
			summary.SkippedDays++
		case enrollment.CompletionPartial:
			summary.PartialDays++
		}
	}

	summary.CurrentStreak = CurrentStreak(completedDates)
	summary.LongestStreak = LongestStreak(completedDates)

	daysSinceStart := 0
	if e.StartedAt != nil && now.After(*e.StartedAt) {
		daysSinceStart = int(now.Sub(*e.StartedAt).Hours() / 24)
	}
	weeks := math.Max(1, float64(daysSinceStart)/7)
	summary.AvgWorkoutsPerWeek = float64(summary.CompletedDays) / weeks

	if totalDays > 0 {
		summary.ProgressPercentage = 100 * float64(e.CurrentDay) / float64(totalDays)
	}

	return summary
}
