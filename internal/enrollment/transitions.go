package enrollment

import (
	"fmt"
	"time"

	"github.com/2beens/programtracker/internal/program"
)

// Transition is the result of a day-resolving transition: the next enrollment
// state and the log row to append.
type Transition struct {
	Next       Enrollment
	Completion DayCompletion
}

func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, from, to)
}

func NewEnrollment(userID, programID string, durationWeeks int, now time.Time) Enrollment {
	estimated := now.AddDate(0, 0, durationWeeks*program.CycleLength)
	return Enrollment{
		UserID:                  userID,
		ProgramID:               programID,
		EnrolledAt:              now,
		Status:                  StatusEnrolled,
		EstimatedCompletionDate: &estimated,
	}
}

// StartNextDay advances the current day by one. The very first call moves the
// enrollment to IN_PROGRESS and stamps StartedAt.
func (e Enrollment) StartNextDay(now time.Time) (Enrollment, error) {
	switch e.Status {
	case StatusEnrolled, StatusInProgress:
	default:
		return e, invalidTransition(e.Status, StatusInProgress)
	}

	next := e
	if next.CurrentDay == 0 {
		started := now
		next.StartedAt = &started
		next.Status = StatusInProgress
	}
	next.CurrentDay++
	return next, nil
}

func (e Enrollment) checkCurrentDay(day program.ProgramDay, to Status) error {
	if e.Status != StatusInProgress {
		return invalidTransition(e.Status, to)
	}
	if e.CurrentDay == 0 {
		return ErrNoCurrentDay
	}
	if day.DayNumber != e.CurrentDay {
		return fmt.Errorf("%w: day %d is not the current day %d", ErrInvariantViolation, day.DayNumber, e.CurrentDay)
	}
	return nil
}

func (e Enrollment) newCompletion(day program.ProgramDay, status CompletionStatus, now time.Time, sessionID, notes string) DayCompletion {
	return DayCompletion{
		EnrollmentID:     e.ID,
		ProgramDayID:     day.ID,
		ProgramDayNumber: day.DayNumber,
		Status:           status,
		CompletionDate:   now,
		WorkoutSessionID: sessionID,
		Notes:            notes,
	}
}

// CompleteDay marks the current day done. Reaching or passing the program's
// last day number completes the enrollment, regardless of how many log rows exist.
func (e Enrollment) CompleteDay(day program.ProgramDay, totalDays int, now time.Time, sessionID, notes string) (Transition, error) {
	if err := e.checkCurrentDay(day, StatusInProgress); err != nil {
		return Transition{}, err
	}

	next := e
	next.TotalDaysCompleted++
	if next.CurrentDay >= totalDays {
		next.Status = StatusCompleted
	}

	return Transition{
		Next:       next,
		Completion: e.newCompletion(day, CompletionCompleted, now, sessionID, notes),
	}, nil
}

// SkipDay logs the current day as skipped and pushes the estimated completion
// date by one day. The current day is not advanced.
func (e Enrollment) SkipDay(day program.ProgramDay, now time.Time, reason string) (Transition, error) {
	if err := e.checkCurrentDay(day, StatusInProgress); err != nil {
		return Transition{}, err
	}

	next := e
	next.TotalDaysSkipped++
	if next.EstimatedCompletionDate != nil {
		extended := next.EstimatedCompletionDate.AddDate(0, 0, 1)
		next.EstimatedCompletionDate = &extended
	}

	return Transition{
		Next:       next,
		Completion: e.newCompletion(day, CompletionSkipped, now, "", reason),
	}, nil
}

// RecordPartialDay logs a partially done day. Counters and the current day stay as they are.
func (e Enrollment) RecordPartialDay(day program.ProgramDay, now time.Time, sessionID, notes string) (Transition, error) {
	if err := e.checkCurrentDay(day, StatusInProgress); err != nil {
		return Transition{}, err
	}
	return Transition{
		Next:       e,
		Completion: e.newCompletion(day, CompletionPartial, now, sessionID, notes),
	}, nil
}

func (e Enrollment) Pause() (Enrollment, error) {
	if e.Status != StatusInProgress {
		return e, invalidTransition(e.Status, StatusPaused)
	}
	next := e
	next.Status = StatusPaused
	return next, nil
}

func (e Enrollment) Resume() (Enrollment, error) {
	if e.Status != StatusPaused {
		return e, invalidTransition(e.Status, StatusInProgress)
	}
	next := e
	next.Status = StatusInProgress
	return next, nil
}

func (e Enrollment) Cancel() (Enrollment, error) {
	if e.Status.IsTerminal() {
		return e, invalidTransition(e.Status, StatusCancelled)
	}
	next := e
	next.Status = StatusCancelled
	return next, nil
}
