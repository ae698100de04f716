package enrollment

import (
	"errors"
	"time"
)

var (
	ErrEnrollmentNotFound     = errors.New("enrollment not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrProgramExhausted       = errors.New("program exhausted")
	ErrInvariantViolation     = errors.New("invariant violation")
	ErrNoCurrentDay           = errors.New("no current program day")
	ErrEnrollmentChanged      = errors.New("enrollment changed concurrently")
)

// Status can be one of:
//   - ENROLLED (created, no day started yet)
//   - IN_PROGRESS
//   - PAUSED
//   - COMPLETED (terminal)
//   - CANCELLED (terminal)
type Status string

const (
	StatusEnrolled   Status = "ENROLLED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaused     Status = "PAUSED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusEnrolled,
		StatusInProgress,
		StatusPaused,
		StatusCompleted,
		StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActiveStatuses are the non-terminal statuses. A user has at most one
// enrollment in any of them.
var ActiveStatuses = []Status{StatusEnrolled, StatusInProgress, StatusPaused}

type Enrollment struct {
	ID                      int64      `json:"id"`
	UserID                  string     `json:"userId"`
	ProgramID               string     `json:"programId"`
	EnrolledAt              time.Time  `json:"enrolledAt"`
	StartedAt               *time.Time `json:"startedAt,omitempty"`
	CurrentDay              int        `json:"currentDay"`
	Status                  Status     `json:"status"`
	EstimatedCompletionDate *time.Time `json:"estimatedCompletionDate,omitempty"`
	TotalDaysCompleted      int        `json:"totalDaysCompleted"`
	TotalDaysSkipped        int        `json:"totalDaysSkipped"`
}

func (e *Enrollment) IsActive() bool {
	return !e.Status.IsTerminal()
}

// CompletionStatus can be one of:
//   - COMPLETED
//   - SKIPPED
//   - PARTIAL
type CompletionStatus string

const (
	CompletionCompleted CompletionStatus = "COMPLETED"
	CompletionSkipped   CompletionStatus = "SKIPPED"
	CompletionPartial   CompletionStatus = "PARTIAL"
)

func (cs CompletionStatus) String() string {
	return string(cs)
}

func (cs CompletionStatus) IsValid() bool {
	switch cs {
	case CompletionCompleted, CompletionSkipped, CompletionPartial:
		return true
	default:
		return false
	}
}

// DayCompletion is one entry of the append-only log of resolved program days.
type DayCompletion struct {
	ID               int64            `json:"id"`
	EnrollmentID     int64            `json:"enrollmentId"`
	ProgramDayID     int64            `json:"programDayId"`
	ProgramDayNumber int              `json:"programDayNumber"`
	Status           CompletionStatus `json:"status"`
	CompletionDate   time.Time        `json:"completionDate"`
	WorkoutSessionID string           `json:"workoutSessionId,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}
