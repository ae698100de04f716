package memory

import (
	"context"

	"github.com/2beens/programtracker/internal/enrollment"
)

// DayJournal resolves a program day across the enrollment and completion
// repos while holding both of their locks.
type DayJournal struct {
	enrollments *EnrollmentRepo
	completions *CompletionRepo
}

func NewDayJournal(enrollments *EnrollmentRepo, completions *CompletionRepo) *DayJournal {
	return &DayJournal{
		enrollments: enrollments,
		completions: completions,
	}
}

// ResolveDay appends c and stores next. Nothing is written unless the
// enrollment still has the expected status.
func (j *DayJournal) ResolveDay(_ context.Context, c enrollment.DayCompletion, next enrollment.Enrollment, expected enrollment.Status) (*enrollment.DayCompletion, error) {
	j.enrollments.mu.Lock()
	defer j.enrollments.mu.Unlock()

	if err := j.enrollments.checkStatus(next.ID, expected); err != nil {
		return nil, err
	}

	j.completions.mu.Lock()
	defer j.completions.mu.Unlock()

	j.completions.lastID++
	c.ID = j.completions.lastID
	j.completions.completions = append(j.completions.completions, c)
	j.enrollments.enrollments[next.ID] = &next

	return &c, nil
}
