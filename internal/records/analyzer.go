package records

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/programtracker/internal/clock"
	"github.com/2beens/programtracker/internal/locking"
	"github.com/2beens/programtracker/internal/telemetry/metrics"
	"github.com/2beens/programtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=records_test

type recordStore interface {
	GetBest(ctx context.Context, exerciseID string, recordType RecordType) (_ float64, found bool, err error)
	Insert(ctx context.Context, record PersonalRecord) (*PersonalRecord, error)
	GetCurrent(ctx context.Context, exerciseID string) ([]PersonalRecord, error)
}

type setLogStore interface {
	GetSetsBetween(ctx context.Context, from, to time.Time) ([]LoggedSet, error)
	Append(ctx context.Context, sets []LoggedSet) error
}

type progressionUpdater interface {
	Update(ctx context.Context, sessionID string, sets []LoggedSet) ([]ProgressionRecord, error)
}

type Analyzer struct {
	records     recordStore
	sets        setLogStore
	progression progressionUpdater
	clock       clock.Clock
	locker      locking.Locker
	metrics     *metrics.Manager
}

// NewAnalyzer builds an Analyzer. Nil locker means an in-process keyed mutex,
// nil metrics disables counting.
func NewAnalyzer(records recordStore, sets setLogStore, clk clock.Clock, locker locking.Locker, metricsManager *metrics.Manager) *Analyzer {
	if locker == nil {
		locker = locking.NewKeyedMutex()
	}
	return &Analyzer{
		records: records,
		sets:    sets,
		clock:   clk,
		locker:  locker,
		metrics: metricsManager,
	}
}

// WithProgression makes LogSets also refresh the working weights of the
// logged exercises.
func (a *Analyzer) WithProgression(progression progressionUpdater) *Analyzer {
	a.progression = progression
	return a
}

// ComputeCandidates groups sets by exercise and computes the best estimated
// one rep max, the best single set and the total volume of each group.
// Result is ordered by exercise id.
func ComputeCandidates(sets []LoggedSet) []Candidates {
	byExercise := make(map[string]*Candidates)
	for _, s := range sets {
		c, ok := byExercise[s.ExerciseID]
		if !ok {
			c = &Candidates{ExerciseID: s.ExerciseID}
			byExercise[s.ExerciseID] = c
		}

		if orm := EstimatedOneRepMax(s.Weight, s.Reps); orm > c.OneRepMax {
			c.OneRepMax = orm
		}
		volume := s.Volume()
		if volume > c.BestSet {
			c.BestSet = volume
		}
		c.SessionVolume += volume
	}

	candidates := make([]Candidates, 0, len(byExercise))
	for _, c := range byExercise {
		candidates = append(candidates, *c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ExerciseID < candidates[j].ExerciseID
	})
	return candidates
}

// ProcessSessionForRecords compares the session's candidates with the stored
// bests and inserts a record for every strictly greater value. Ties and
// exercises absent from the session leave records untouched.
func (a *Analyzer) ProcessSessionForRecords(ctx context.Context, sessionID string, sets []LoggedSet) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.process-session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))
	span.SetAttributes(attribute.Int("sets", len(sets)))

	newRecords := make([]PersonalRecord, 0)
	for _, c := range ComputeCandidates(sets) {
		if c.ExerciseID == "" {
			log.Warnf("session %s: ignoring sets without exercise id", sessionID)
			continue
		}
		for _, recordType := range RecordTypes {
			record, err := a.compareAndInsert(ctx, sessionID, c.ExerciseID, recordType, c.Value(recordType))
			if err != nil {
				return newRecords, err
			}
			if record != nil {
				newRecords = append(newRecords, *record)
			}
		}
	}

	span.SetAttributes(attribute.Int("new_records", len(newRecords)))
	return newRecords, nil
}

// compareAndInsert stores candidate when it beats the stored best. With no
// stored best any candidate counts, zero included (bodyweight work).
func (a *Analyzer) compareAndInsert(ctx context.Context, sessionID, exerciseID string, recordType RecordType, candidate float64) (*PersonalRecord, error) {
	key := fmt.Sprintf("record:%s:%s", exerciseID, recordType)
	unlock, err := a.locker.Lock(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	defer unlock()

	best, found, err := a.records.GetBest(ctx, exerciseID, recordType)
	if err != nil {
		return nil, fmt.Errorf("get best %s of %s: %w", recordType, exerciseID, err)
	}
	if found && candidate <= best {
		return nil, nil
	}

	record, err := a.records.Insert(ctx, PersonalRecord{
		ExerciseID: exerciseID,
		Type:       recordType,
		Value:      candidate,
		SessionID:  sessionID,
		Date:       a.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert %s record of %s: %w", recordType, exerciseID, err)
	}

	if a.metrics != nil {
		a.metrics.CounterPersonalRecords.WithLabelValues(recordType.String()).Inc()
	}
	log.Infof("new %s record for %s: %.2f (previous %.2f)", recordType, exerciseID, candidate, best)
	return record, nil
}

// LogSets stores the session's sets and runs record detection over them.
func (a *Analyzer) LogSets(ctx context.Context, sessionID string, sets []LoggedSet) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.log-sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", sessionID))

	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id empty", ErrInvalidSet)
	}
	for i, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
	}

	now := a.clock.Now()
	normalized := make([]LoggedSet, len(sets))
	copy(normalized, sets)
	for i := range normalized {
		normalized[i].SessionID = sessionID
		if normalized[i].LoggedAt.IsZero() {
			normalized[i].LoggedAt = now
		}
		if normalized[i].SetNumber == 0 {
			normalized[i].SetNumber = i + 1
		}
	}
	sets = normalized

	if err := a.sets.Append(ctx, sets); err != nil {
		return nil, fmt.Errorf("append sets: %w", err)
	}
	if a.metrics != nil {
		a.metrics.CounterLoggedSets.Add(float64(len(sets)))
	}

	if a.progression != nil {
		if _, err := a.progression.Update(ctx, sessionID, sets); err != nil {
			return nil, fmt.Errorf("update progression: %w", err)
		}
	}

	return a.ProcessSessionForRecords(ctx, sessionID, sets)
}

func (a *Analyzer) RecordsFor(ctx context.Context, exerciseID string) ([]PersonalRecord, error) {
	return a.records.GetCurrent(ctx, exerciseID)
}

// window returns [start of day (windowDays-1) days ago, now].
func (a *Analyzer) window(windowDays int) (time.Time, time.Time, error) {
	if windowDays < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d", ErrInvalidWindow, windowDays)
	}
	now := a.clock.Now()
	from := clock.StartOfDay(now).AddDate(0, 0, -(windowDays - 1))
	return from, now, nil
}

func (a *Analyzer) setsInWindow(ctx context.Context, windowDays int) ([]LoggedSet, error) {
	from, to, err := a.window(windowDays)
	if err != nil {
		return nil, err
	}

	sets, err := a.sets.GetSetsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("get sets between %s and %s: %w", from, to, err)
	}

	inWindow := make([]LoggedSet, 0, len(sets))
	for _, s := range sets {
		if s.LoggedAt.Before(from) || s.LoggedAt.After(to) {
			continue
		}
		inWindow = append(inWindow, s)
	}
	return inWindow, nil
}

// AggregateVolume sums weight * reps per exercise over the last windowDays
// calendar days (today included), largest total first.
func (a *Analyzer) AggregateVolume(ctx context.Context, windowDays int) (_ []ExerciseVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.aggregate-volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("window_days", windowDays))

	sets, err := a.setsInWindow(ctx, windowDays)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, s := range sets {
		totals[s.ExerciseID] += s.Volume()
	}

	volumes := make([]ExerciseVolume, 0, len(totals))
	for exerciseID, total := range totals {
		volumes = append(volumes, ExerciseVolume{ExerciseID: exerciseID, Total: total})
	}
	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].Total == volumes[j].Total {
			return volumes[i].ExerciseID < volumes[j].ExerciseID
		}
		return volumes[i].Total > volumes[j].Total
	})

	return volumes, nil
}

// ExerciseVolume is AggregateVolume narrowed to a single exercise.
func (a *Analyzer) ExerciseVolume(ctx context.Context, windowDays int, exerciseID string) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.records.exercise-volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("window_days", windowDays))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	sets, err := a.setsInWindow(ctx, windowDays)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, s := range sets {
		if s.ExerciseID == exerciseID {
			total += s.Volume()
		}
	}
	return total, nil
}
