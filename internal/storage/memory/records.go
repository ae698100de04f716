package memory

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/programtracker/internal/records"
)

// RecordRepo keeps every personal record row; the current record of an
// (exercise, type) pair is its maximum.
type RecordRepo struct {
	mu      sync.RWMutex
	lastID  int64
	records []records.PersonalRecord
}

func NewRecordRepo() *RecordRepo {
	return &RecordRepo{}
}

func (r *RecordRepo) GetBest(_ context.Context, exerciseID string, recordType records.RecordType) (float64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best, found := 0.0, false
	for _, pr := range r.records {
		if pr.ExerciseID != exerciseID || pr.Type != recordType {
			continue
		}
		if !found || pr.Value > best {
			best, found = pr.Value, true
		}
	}
	return best, found, nil
}

func (r *RecordRepo) Insert(_ context.Context, record records.PersonalRecord) (*records.PersonalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	record.ID = r.lastID
	r.records = append(r.records, record)
	return &record, nil
}

// GetCurrent returns the best row per record type of the exercise, in
// records.RecordTypes order.
func (r *RecordRepo) GetCurrent(_ context.Context, exerciseID string) ([]records.PersonalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := make(map[records.RecordType]records.PersonalRecord)
	for _, pr := range r.records {
		if pr.ExerciseID != exerciseID {
			continue
		}
		if cur, ok := best[pr.Type]; !ok || pr.Value > cur.Value {
			best[pr.Type] = pr
		}
	}

	current := make([]records.PersonalRecord, 0, len(best))
	for _, t := range records.RecordTypes {
		if pr, ok := best[t]; ok {
			current = append(current, pr)
		}
	}
	return current, nil
}

type SetLogRepo struct {
	mu     sync.RWMutex
	lastID int64
	sets   []records.LoggedSet
}

func NewSetLogRepo() *SetLogRepo {
	return &SetLogRepo{}
}

func (r *SetLogRepo) Append(_ context.Context, sets []records.LoggedSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range sets {
		r.lastID++
		s.ID = r.lastID
		r.sets = append(r.sets, s)
	}
	return nil
}

// GetSetsBetween returns sets logged in [from, to], both ends inclusive.
func (r *SetLogRepo) GetSetsBetween(_ context.Context, from, to time.Time) ([]records.LoggedSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sets := make([]records.LoggedSet, 0)
	for _, s := range r.sets {
		if s.LoggedAt.Before(from) || s.LoggedAt.After(to) {
			continue
		}
		sets = append(sets, s)
	}
	return sets, nil
}
