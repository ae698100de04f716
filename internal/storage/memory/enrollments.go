package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/programtracker/internal/enrollment"
)

// EnrollmentRepo keeps enrollments in a map, for tests and the in-memory
// storage mode.
type EnrollmentRepo struct {
	mu          sync.RWMutex
	lastID      int64
	enrollments map[int64]*enrollment.Enrollment
}

func NewEnrollmentRepo() *EnrollmentRepo {
	return &EnrollmentRepo{
		enrollments: make(map[int64]*enrollment.Enrollment),
	}
}

func (r *EnrollmentRepo) GetByID(_ context.Context, id int64) (*enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.enrollments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	cp := *e
	return &cp, nil
}

func (r *EnrollmentRepo) GetActiveForUser(_ context.Context, userID string) (*enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *enrollment.Enrollment
	for _, e := range r.enrollments {
		if e.UserID != userID || !e.IsActive() {
			continue
		}
		if latest == nil || e.ID > latest.ID {
			latest = e
		}
	}
	if latest == nil {
		return nil, enrollment.ErrEnrollmentNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *EnrollmentRepo) GetAllForUser(_ context.Context, userID string) ([]enrollment.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []enrollment.Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			all = append(all, *e)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *EnrollmentRepo) Insert(_ context.Context, e enrollment.Enrollment) (*enrollment.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	e.ID = r.lastID
	r.enrollments[e.ID] = &e
	cp := e
	return &cp, nil
}

// Update replaces the stored enrollment, provided it still has the expected status.
func (r *EnrollmentRepo) Update(_ context.Context, e *enrollment.Enrollment, expected enrollment.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkStatus(e.ID, expected); err != nil {
		return err
	}
	cp := *e
	r.enrollments[e.ID] = &cp
	return nil
}

// checkStatus expects r.mu to be held.
func (r *EnrollmentRepo) checkStatus(id int64, expected enrollment.Status) error {
	stored, ok := r.enrollments[id]
	if !ok {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	if stored.Status != expected {
		return fmt.Errorf("%w: %d is %s, expected %s", enrollment.ErrEnrollmentChanged, id, stored.Status, expected)
	}
	return nil
}

func (r *EnrollmentRepo) UpdateCurrentDay(_ context.Context, id int64, newDay int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.enrollments[id]
	if !ok {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	e.CurrentDay = newDay
	return nil
}

func (r *EnrollmentRepo) UpdateStatus(_ context.Context, id int64, status enrollment.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.enrollments[id]
	if !ok {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	e.Status = status
	return nil
}

func (r *EnrollmentRepo) UpdateStatusFrom(_ context.Context, id int64, from, to enrollment.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkStatus(id, from); err != nil {
		return err
	}
	r.enrollments[id].Status = to
	return nil
}

// DeactivateAllForUser cancels every active enrollment of the user.
func (r *EnrollmentRepo) DeactivateAllForUser(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.deactivateAllForUser(userID), nil
}

func (r *EnrollmentRepo) deactivateAllForUser(userID string) int {
	count := 0
	for _, e := range r.enrollments {
		if e.UserID == userID && e.IsActive() {
			e.Status = enrollment.StatusCancelled
			count++
		}
	}
	return count
}

// ReplaceActiveForUser cancels the user's active enrollments and inserts e
// under a single lock, so readers never see the user with none or two.
func (r *EnrollmentRepo) ReplaceActiveForUser(_ context.Context, e enrollment.Enrollment) (*enrollment.Enrollment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deactivated := r.deactivateAllForUser(e.UserID)
	r.lastID++
	e.ID = r.lastID
	r.enrollments[e.ID] = &e
	cp := e
	return &cp, deactivated, nil
}

func (r *EnrollmentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.enrollments[id]; !ok {
		return fmt.Errorf("%w: %d", enrollment.ErrEnrollmentNotFound, id)
	}
	delete(r.enrollments, id)
	return nil
}
