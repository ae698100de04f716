package memory

import (
	"context"
	"sync"

	"github.com/2beens/programtracker/internal/records"
)

type ProgressionRepo struct {
	mu      sync.RWMutex
	working map[string]records.ProgressionRecord
}

func NewProgressionRepo() *ProgressionRepo {
	return &ProgressionRepo{
		working: make(map[string]records.ProgressionRecord),
	}
}

func (r *ProgressionRepo) Get(_ context.Context, exerciseID string) (*records.ProgressionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.working[exerciseID]
	if !ok {
		return nil, records.ErrProgressionNotFound
	}
	return &record, nil
}

func (r *ProgressionRepo) Upsert(_ context.Context, record records.ProgressionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.working[record.ExerciseID] = record
	return nil
}
