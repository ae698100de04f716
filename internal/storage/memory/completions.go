package memory

import (
	"context"
	"sync"

	"github.com/2beens/programtracker/internal/enrollment"
)

// CompletionRepo is an append-only log of day completions.
type CompletionRepo struct {
	mu          sync.RWMutex
	lastID      int64
	completions []enrollment.DayCompletion
}

func NewCompletionRepo() *CompletionRepo {
	return &CompletionRepo{}
}

func (r *CompletionRepo) Append(_ context.Context, c enrollment.DayCompletion) (*enrollment.DayCompletion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	c.ID = r.lastID
	r.completions = append(r.completions, c)
	return &c, nil
}

// GetAllForEnrollment returns the log in append order.
func (r *CompletionRepo) GetAllForEnrollment(_ context.Context, enrollmentID int64) ([]enrollment.DayCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	completions := make([]enrollment.DayCompletion, 0)
	for _, c := range r.completions {
		if c.EnrollmentID == enrollmentID {
			completions = append(completions, c)
		}
	}
	return completions, nil
}

func (r *CompletionRepo) DeleteAllForEnrollment(_ context.Context, enrollmentID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.completions[:0]
	removed := 0
	for _, c := range r.completions {
		if c.EnrollmentID == enrollmentID {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.completions = kept
	return removed, nil
}
