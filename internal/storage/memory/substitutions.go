package memory

import (
	"context"
	"sync"

	"github.com/2beens/programtracker/internal/program"
)

type SubstitutionRepo struct {
	mu   sync.RWMutex
	subs map[int]map[string]program.Substitution
}

func NewSubstitutionRepo() *SubstitutionRepo {
	return &SubstitutionRepo{
		subs: make(map[int]map[string]program.Substitution),
	}
}

// GetAllForDay returns original -> substitute exercise ids for the day.
func (r *SubstitutionRepo) GetAllForDay(_ context.Context, dayNumber int) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string, len(r.subs[dayNumber]))
	for original, s := range r.subs[dayNumber] {
		result[original] = s.SubstituteExerciseID
	}
	return result, nil
}

func (r *SubstitutionRepo) Upsert(_ context.Context, sub program.Substitution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	day, ok := r.subs[sub.ProgramDay]
	if !ok {
		day = make(map[string]program.Substitution)
		r.subs[sub.ProgramDay] = day
	}
	day[sub.OriginalExerciseID] = sub
	return nil
}

// Delete is a no-op when the substitution does not exist.
func (r *SubstitutionRepo) Delete(_ context.Context, dayNumber int, originalExerciseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs[dayNumber], originalExerciseID)
	if len(r.subs[dayNumber]) == 0 {
		delete(r.subs, dayNumber)
	}
	return nil
}
