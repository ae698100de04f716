package records

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow = errors.New("window must be at least one day")
	ErrInvalidSet    = errors.New("invalid logged set")
)

// RecordType can be one of:
//   - ONE_REP_MAX (best estimated one rep max, Epley)
//   - BEST_SET (best single set weight * reps)
//   - SESSION_VOLUME (best sum of weight * reps in one session)
type RecordType string

const (
	RecordOneRepMax     RecordType = "ONE_REP_MAX"
	RecordBestSet       RecordType = "BEST_SET"
	RecordSessionVolume RecordType = "SESSION_VOLUME"
)

var RecordTypes = []RecordType{RecordOneRepMax, RecordBestSet, RecordSessionVolume}

func (rt RecordType) String() string {
	return string(rt)
}

func (rt RecordType) IsValid() bool {
	switch rt {
	case RecordOneRepMax, RecordBestSet, RecordSessionVolume:
		return true
	default:
		return false
	}
}

// PersonalRecord rows are never updated. The current record of an
// (exercise, type) pair is the row with the highest value.
type PersonalRecord struct {
	ID         int64      `json:"id"`
	ExerciseID string     `json:"exerciseId"`
	Type       RecordType `json:"type"`
	Value      float64    `json:"value"`
	SessionID  string     `json:"sessionId,omitempty"`
	Date       time.Time  `json:"date"`
}

// LoggedSet is a single set logged during a workout session.
type LoggedSet struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"sessionId"`
	ExerciseID string    `json:"exerciseId"`
	SetNumber  int       `json:"setNumber"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	RPE        float64   `json:"rpe"`
	LoggedAt   time.Time `json:"loggedAt"`
}

func (s LoggedSet) Validate() error {
	if s.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id empty", ErrInvalidSet)
	}
	if s.Weight < 0 || s.Reps < 0 {
		return fmt.Errorf("%w: negative weight or reps", ErrInvalidSet)
	}
	return nil
}

func (s LoggedSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// EstimatedOneRepMax uses the Epley formula: weight * (1 + reps/30).
func EstimatedOneRepMax(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// Candidates are the per-exercise values a session competes with stored records.
type Candidates struct {
	ExerciseID    string  `json:"exerciseId"`
	OneRepMax     float64 `json:"oneRepMax"`
	BestSet       float64 `json:"bestSet"`
	SessionVolume float64 `json:"sessionVolume"`
}

func (c Candidates) Value(t RecordType) float64 {
	switch t {
	case RecordOneRepMax:
		return c.OneRepMax
	case RecordBestSet:
		return c.BestSet
	case RecordSessionVolume:
		return c.SessionVolume
	default:
		return 0
	}
}

type ExerciseVolume struct {
	ExerciseID string  `json:"exerciseId"`
	Total      float64 `json:"total"`
}
