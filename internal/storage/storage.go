package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/programtracker/internal/enrollment"
	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/records"
	"github.com/2beens/programtracker/internal/storage/memory"
	"github.com/2beens/programtracker/internal/storage/postgres"
)

const (
	TypeMemory   = "memory"
	TypePostgres = "postgres"
)

type EnrollmentStore interface {
	GetByID(ctx context.Context, id int64) (*enrollment.Enrollment, error)
	GetActiveForUser(ctx context.Context, userID string) (*enrollment.Enrollment, error)
	Insert(ctx context.Context, e enrollment.Enrollment) (*enrollment.Enrollment, error)
	Update(ctx context.Context, e *enrollment.Enrollment, expected enrollment.Status) error
	UpdateCurrentDay(ctx context.Context, id int64, newDay int) error
	UpdateStatus(ctx context.Context, id int64, status enrollment.Status) error
	UpdateStatusFrom(ctx context.Context, id int64, from, to enrollment.Status) error
	DeactivateAllForUser(ctx context.Context, userID string) (int, error)
	ReplaceActiveForUser(ctx context.Context, e enrollment.Enrollment) (*enrollment.Enrollment, int, error)
	Delete(ctx context.Context, id int64) error
}

// DayJournal records a day resolution and the enrollment it advanced
// atomically.
type DayJournal interface {
	ResolveDay(ctx context.Context, c enrollment.DayCompletion, next enrollment.Enrollment, expected enrollment.Status) (*enrollment.DayCompletion, error)
}

type ProgramDayStore interface {
	GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (*program.ProgramDay, error)
	GetTotalDayCount(ctx context.Context, programID string) (int, error)
	InsertDays(ctx context.Context, days []program.ProgramDay) error
}

type CompletionStore interface {
	Append(ctx context.Context, c enrollment.DayCompletion) (*enrollment.DayCompletion, error)
	GetAllForEnrollment(ctx context.Context, enrollmentID int64) ([]enrollment.DayCompletion, error)
	DeleteAllForEnrollment(ctx context.Context, enrollmentID int64) (int, error)
}

type SubstitutionStore interface {
	GetAllForDay(ctx context.Context, dayNumber int) (map[string]string, error)
	Upsert(ctx context.Context, sub program.Substitution) error
	Delete(ctx context.Context, dayNumber int, originalExerciseID string) error
}

type RecordStore interface {
	GetBest(ctx context.Context, exerciseID string, recordType records.RecordType) (float64, bool, error)
	Insert(ctx context.Context, record records.PersonalRecord) (*records.PersonalRecord, error)
	GetCurrent(ctx context.Context, exerciseID string) ([]records.PersonalRecord, error)
}

type SetLogStore interface {
	Append(ctx context.Context, sets []records.LoggedSet) error
	GetSetsBetween(ctx context.Context, from, to time.Time) ([]records.LoggedSet, error)
}

type ProgressionStore interface {
	Get(ctx context.Context, exerciseID string) (*records.ProgressionRecord, error)
	Upsert(ctx context.Context, record records.ProgressionRecord) error
}

// Stores groups one backend's repositories.
type Stores struct {
	Enrollments   EnrollmentStore
	Days          ProgramDayStore
	Completions   CompletionStore
	Journal       DayJournal
	Substitutions SubstitutionStore
	Records       RecordStore
	Sets          SetLogStore
	Progression   ProgressionStore
}

func NewMemory() *Stores {
	enrollments := memory.NewEnrollmentRepo()
	completions := memory.NewCompletionRepo()
	return &Stores{
		Enrollments:   enrollments,
		Days:          memory.NewProgramDayRepo(),
		Completions:   completions,
		Journal:       memory.NewDayJournal(enrollments, completions),
		Substitutions: memory.NewSubstitutionRepo(),
		Records:       memory.NewRecordRepo(),
		Sets:          memory.NewSetLogRepo(),
		Progression:   memory.NewProgressionRepo(),
	}
}

func NewPostgres(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Enrollments:   postgres.NewEnrollmentRepo(pool),
		Days:          postgres.NewProgramDayRepo(pool),
		Completions:   postgres.NewCompletionRepo(pool),
		Journal:       postgres.NewDayJournal(pool),
		Substitutions: postgres.NewSubstitutionRepo(pool),
		Records:       postgres.NewRecordRepo(pool),
		Sets:          postgres.NewSetLogRepo(pool),
		Progression:   postgres.NewProgressionRepo(pool),
	}
}

// New picks the backend by name; pool is only used for postgres.
func New(storageType string, pool *pgxpool.Pool) (*Stores, error) {
	switch storageType {
	case TypeMemory:
		return NewMemory(), nil
	case TypePostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres storage needs a db pool")
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}
