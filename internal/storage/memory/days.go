package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/programtracker/internal/program"
)

type dayKey struct {
	programID string
	dayNumber int
}

type ProgramDayRepo struct {
	mu     sync.RWMutex
	lastID int64
	days   map[dayKey]*program.ProgramDay
}

func NewProgramDayRepo() *ProgramDayRepo {
	return &ProgramDayRepo{
		days: make(map[dayKey]*program.ProgramDay),
	}
}

func (r *ProgramDayRepo) GetByProgramAndDay(_ context.Context, programID string, dayNumber int) (*program.ProgramDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.days[dayKey{programID, dayNumber}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%d", program.ErrDayNotFound, programID, dayNumber)
	}
	cp := *d
	return &cp, nil
}

func (r *ProgramDayRepo) GetAllForProgram(_ context.Context, programID string) ([]program.ProgramDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var days []program.ProgramDay
	for k, d := range r.days {
		if k.programID == programID {
			days = append(days, *d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})
	return days, nil
}

func (r *ProgramDayRepo) GetTotalDayCount(_ context.Context, programID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for k := range r.days {
		if k.programID == programID {
			count++
		}
	}
	return count, nil
}

// InsertDays stores all days or none: a (program, day number) pair that
// already exists fails the whole batch.
func (r *ProgramDayRepo) InsertDays(_ context.Context, days []program.ProgramDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range days {
		if _, exists := r.days[dayKey{d.ProgramID, d.DayNumber}]; exists {
			return fmt.Errorf("program %s already has day %d", d.ProgramID, d.DayNumber)
		}
	}
	for _, d := range days {
		r.lastID++
		d.ID = r.lastID
		r.days[dayKey{d.ProgramID, d.DayNumber}] = &d
	}
	return nil
}
