package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/locking"
	"github.com/2beens/programtracker/internal/program"
	"github.com/2beens/programtracker/internal/telemetry/metrics"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Writes that carry an expected status fail with ErrEnrollmentChanged when
// the stored status no longer matches it.
type enrollmentStore interface {
	GetByID(ctx context.Context, id int64) (*Enrollment, error)
	GetActiveForUser(ctx context.Context, userID string) (*Enrollment, error)
	ReplaceActiveForUser(ctx context.Context, e Enrollment) (*Enrollment, int, error)
	Update(ctx context.Context, e *Enrollment, expected Status) error
	UpdateCurrentDay(ctx context.Context, id int64, newDay int) error
	UpdateStatusFrom(ctx context.Context, id int64, from, to Status) error
	Delete(ctx context.Context, id int64) error
}

// dayJournal appends a completion row and persists the enrollment it
// produced as one unit.
type dayJournal interface {
	ResolveDay(ctx context.Context, c DayCompletion, next Enrollment, expected Status) (*DayCompletion, error)
}

type programDayStore interface {
	GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (*program.ProgramDay, error)
	GetTotalDayCount(ctx context.Context, programID string) (int, error)
}

type completionStore interface {
	GetAllForEnrollment(ctx context.Context, enrollmentID int64) ([]DayCompletion, error)
	DeleteAllForEnrollment(ctx context.Context, enrollmentID int64) (int, error)
}

type programCatalog interface {
	GetProgram(ctx context.Context, id string) (*program.Program, error)
}

type daySchedule interface {
	ResolveDay(ctx context.Context, programID string, dayNumber int) (*program.ResolvedDay, error)
	ResolveExercises(ctx context.Context, templateKey string, dayNumber int) ([]program.ExerciseRef, error)
}

// Workout is what the current program day asks of the user.
type Workout struct {
	Enrollment Enrollment            `json:"enrollment"`
	Day        program.ProgramDay    `json:"day"`
	Schedule   program.ResolvedDay   `json:"schedule"`
	Exercises  []program.ExerciseRef `json:"exercises"`
}

type ServiceParams struct {
	Enrollments enrollmentStore
	Days        programDayStore
	Completions completionStore
	Journal     dayJournal
	Programs    programCatalog
	Scheduler   daySchedule
	Clock       clock.Clock
	// Locker serializes mutations per enrollment (and enrolls per user).
	// Defaults to an in-process keyed mutex.
	Locker  locking.Locker
	Metrics *metrics.Manager
}

// Service drives enrollments through their lifecycle. Every mutation is a
// read, a pure transition, and a write, done under the enrollment's lock.
type Service struct {
	enrollments enrollmentStore
	days        programDayStore
	completions completionStore
	journal     dayJournal
	programs    programCatalog
	scheduler   daySchedule
	clock       clock.Clock
	locker      locking.Locker
	metrics     *metrics.Manager
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		enrollments: params.Enrollments,
		days:        params.Days,
		completions: params.Completions,
		journal:     params.Journal,
		programs:    params.Programs,
		scheduler:   params.Scheduler,
		clock:       params.Clock,
		locker:      params.Locker,
		metrics:     params.Metrics,
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.locker == nil {
		s.locker = locking.NewKeyedMutex()
	}
	return s
}

func enrollmentKey(id int64) string {
	return fmt.Sprintf("enrollment:%d", id)
}

func (s *Service) lock(ctx context.Context, key string) (locking.Unlock, error) {
	unlock, err := s.locker.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	return unlock, nil
}

// Enroll cancels whatever active enrollment the user has and creates a new one.
func (s *Service) Enroll(ctx context.Context, programID, userID string) (_ *Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment.enroll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("program_id", programID))
	span.SetAttributes(attribute.String("user_id", userID))

	if userID == "" {
		return nil, errors.New("user id empty")
	}

	p, err := s.programs.GetProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("get program %s: %w", programID, err)
	}

	unlock, err := s.lock(ctx, "user:"+userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// the enrollment being replaced may have a mutation in flight
	active, err := s.enrollments.GetActiveForUser(ctx, userID)
	switch {
	case err == nil:
		unlockActive, err := s.lock(ctx, enrollmentKey(active.ID))
		if err != nil {
			return nil, err
		}
		defer unlockActive()
	case !errors.Is(err, ErrEnrollmentNotFound):
		return nil, fmt.Errorf("get active enrollment of %s: %w", userID, err)
	}

	created, deactivated, err := s.enrollments.ReplaceActiveForUser(ctx, NewEnrollment(userID, p.ID, p.DurationWeeks, s.clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("replace active enrollment of %s: %w", userID, err)
	}
	if deactivated > 0 {
		log.Debugf("user %s: cancelled %d active enrollment(s) before enrolling in %s", userID, deactivated, programID)
	}

	if s.metrics != nil {
		s.metrics.CounterEnrollments.Inc()
	}
	log.Infof("user %s enrolled in program %s (enrollment %d)", userID, p.ID, created.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Enrollment, error) {
	return s.enrollments.GetByID(ctx, id)
}

func (s *Service) ActiveForUser(ctx context.Context, userID string) (*Enrollment, error) {
	return s.enrollments.GetActiveForUser(ctx, userID)
}

// History returns the enrollment's completion log.
func (s *Service) History(ctx context.Context, id int64) ([]DayCompletion, error) {
	if _, err := s.enrollments.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.completions.GetAllForEnrollment(ctx, id)
}

// StartDay advances to the next program day and returns it. Fails with
// ErrProgramExhausted, without changing anything, when no such day exists.
func (s *Service) StartDay(ctx context.Context, id int64) (_ *program.ProgramDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment.start-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", id))

	unlock, err := s.lock(ctx, enrollmentKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := e.StartNextDay(s.clock.Now())
	if err != nil {
		log.Warnf("enrollment %d: start day rejected: %s", id, err)
		return nil, err
	}

	day, err := s.days.GetByProgramAndDay(ctx, next.ProgramID, next.CurrentDay)
	if errors.Is(err, program.ErrDayNotFound) {
		return nil, fmt.Errorf("%w: program %s has no day %d", ErrProgramExhausted, next.ProgramID, next.CurrentDay)
	}
	if err != nil {
		return nil, fmt.Errorf("get program day %d: %w", next.CurrentDay, err)
	}

	if e.CurrentDay == 0 {
		err = s.enrollments.Update(ctx, &next, e.Status)
	} else {
		err = s.enrollments.UpdateCurrentDay(ctx, id, next.CurrentDay)
	}
	if err != nil {
		return nil, fmt.Errorf("persist day advance: %w", err)
	}

	if e.Status != next.Status {
		s.countTransition(next.Status)
	}
	log.Debugf("enrollment %d: started day %d (%s)", id, day.DayNumber, day.Name)
	return day, nil
}

func (s *Service) CompleteCurrentDay(ctx context.Context, id int64, sessionID, notes string) (*Enrollment, error) {
	return s.resolveCurrentDay(ctx, id, CompletionCompleted, func(e Enrollment, day program.ProgramDay, totalDays int) (Transition, error) {
		return e.CompleteDay(day, totalDays, s.clock.Now(), sessionID, notes)
	})
}

func (s *Service) SkipCurrentDay(ctx context.Context, id int64, reason string) (*Enrollment, error) {
	return s.resolveCurrentDay(ctx, id, CompletionSkipped, func(e Enrollment, day program.ProgramDay, _ int) (Transition, error) {
		return e.SkipDay(day, s.clock.Now(), reason)
	})
}

func (s *Service) RecordPartialDay(ctx context.Context, id int64, sessionID, notes string) (*Enrollment, error) {
	return s.resolveCurrentDay(ctx, id, CompletionPartial, func(e Enrollment, day program.ProgramDay, _ int) (Transition, error) {
		return e.RecordPartialDay(day, s.clock.Now(), sessionID, notes)
	})
}

type dayTransition func(e Enrollment, day program.ProgramDay, totalDays int) (Transition, error)

// resolveCurrentDay appends one completion log row for the current day and
// persists the resulting enrollment in the same write. Not idempotent: every
// call appends.
func (s *Service) resolveCurrentDay(ctx context.Context, id int64, status CompletionStatus, transition dayTransition) (_ *Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment.resolve-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", id))
	span.SetAttributes(attribute.String("status", status.String()))

	unlock, err := s.lock(ctx, enrollmentKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status.IsTerminal() || e.Status == StatusPaused {
		return nil, invalidTransition(e.Status, StatusInProgress)
	}
	if e.CurrentDay == 0 {
		return nil, fmt.Errorf("enrollment %d: %w", id, ErrNoCurrentDay)
	}

	day, err := s.days.GetByProgramAndDay(ctx, e.ProgramID, e.CurrentDay)
	if err != nil {
		return nil, fmt.Errorf("get current program day %d: %w", e.CurrentDay, err)
	}
	totalDays, err := s.days.GetTotalDayCount(ctx, e.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("get program day count: %w", err)
	}

	t, err := transition(*e, *day, totalDays)
	if err != nil {
		log.Warnf("enrollment %d: %s rejected: %s", id, status, err)
		return nil, err
	}

	if _, err := s.journal.ResolveDay(ctx, t.Completion, t.Next, e.Status); err != nil {
		return nil, fmt.Errorf("record %s day: %w", status, err)
	}

	if s.metrics != nil {
		s.metrics.CounterDayResolutions.WithLabelValues(status.String()).Inc()
	}
	if e.Status != t.Next.Status {
		s.countTransition(t.Next.Status)
		log.Infof("enrollment %d: %s -> %s", id, e.Status, t.Next.Status)
	}
	log.Debugf("enrollment %d: day %d %s", id, day.DayNumber, status)
	return &t.Next, nil
}

func (s *Service) Pause(ctx context.Context, id int64) (*Enrollment, error) {
	return s.changeStatus(ctx, id, "pause", Enrollment.Pause)
}

func (s *Service) Resume(ctx context.Context, id int64) (*Enrollment, error) {
	return s.changeStatus(ctx, id, "resume", Enrollment.Resume)
}

// Cancel fails with ErrInvalidStateTransition on an already terminal enrollment.
func (s *Service) Cancel(ctx context.Context, id int64) (*Enrollment, error) {
	return s.changeStatus(ctx, id, "cancel", Enrollment.Cancel)
}

func (s *Service) changeStatus(ctx context.Context, id int64, op string, transition func(Enrollment) (Enrollment, error)) (_ *Enrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment."+op)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", id))

	unlock, err := s.lock(ctx, enrollmentKey(id))
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := transition(*e)
	if err != nil {
		log.Warnf("enrollment %d: %s rejected: %s", id, op, err)
		return nil, err
	}

	if err := s.enrollments.UpdateStatusFrom(ctx, id, e.Status, next.Status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.countTransition(next.Status)
	log.Infof("enrollment %d: %s -> %s", id, e.Status, next.Status)
	return &next, nil
}

// Purge cancels the enrollment if it is still active, then removes it
// together with its completion log.
func (s *Service) Purge(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment.purge")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", id))

	unlock, err := s.lock(ctx, enrollmentKey(id))
	if err != nil {
		return err
	}
	defer unlock()

	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e.IsActive() {
		cancelled, err := e.Cancel()
		if err != nil {
			return err
		}
		if err := s.enrollments.UpdateStatusFrom(ctx, id, e.Status, cancelled.Status); err != nil {
			return fmt.Errorf("cancel before purge: %w", err)
		}
		s.countTransition(cancelled.Status)
	}

	removed, err := s.completions.DeleteAllForEnrollment(ctx, id)
	if err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	if err := s.enrollments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}

	log.Infof("enrollment %d purged with %d completion rows", id, removed)
	return nil
}

// CurrentWorkout resolves the current day into its schedule slot and
// exercise list, with the day's substitutions applied.
func (s *Service) CurrentWorkout(ctx context.Context, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.enrollment.current-workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("enrollment_id", id))

	e, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.CurrentDay == 0 {
		return nil, fmt.Errorf("enrollment %d: %w", id, ErrNoCurrentDay)
	}

	day, err := s.days.GetByProgramAndDay(ctx, e.ProgramID, e.CurrentDay)
	if err != nil {
		return nil, fmt.Errorf("get current program day %d: %w", e.CurrentDay, err)
	}

	resolved, err := s.scheduler.ResolveDay(ctx, e.ProgramID, e.CurrentDay)
	if err != nil {
		return nil, fmt.Errorf("resolve day %d: %w", e.CurrentDay, err)
	}

	// the authored day wins over the rotation
	templateKey := day.TemplateKey
	if templateKey == "" && day.DayType != program.DayTypeRest {
		templateKey = resolved.TemplateKey
	}

	exercises := make([]program.ExerciseRef, 0)
	if templateKey != "" {
		exercises, err = s.scheduler.ResolveExercises(ctx, templateKey, day.DayNumber)
		if err != nil {
			return nil, fmt.Errorf("resolve exercises of %s: %w", templateKey, err)
		}
	}

	return &Workout{
		Enrollment: *e,
		Day:        *day,
		Schedule:   *resolved,
		Exercises:  exercises,
	}, nil
}

func (s *Service) countTransition(to Status) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterStatusTransitions.WithLabelValues(to.String()).Inc()
}
