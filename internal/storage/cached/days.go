package cached

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/programtracker/internal/program"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultCacheSize of 10 MB holds well over a hundred thousand day rows.
	DefaultCacheSize = 10 * 1024 * 1024
	DefaultTTL       = time.Hour
)

type dayStore interface {
	GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (*program.ProgramDay, error)
	GetTotalDayCount(ctx context.Context, programID string) (int, error)
	InsertDays(ctx context.Context, days []program.ProgramDay) error
}

// ProgramDayRepo serves program days and day counts from an in-process
// cache. Days are immutable once seeded; inserts invalidate the touched
// programs.
type ProgramDayRepo struct {
	store         dayStore
	cache         *freecache.Cache
	expireSeconds int
}

func NewProgramDayRepo(store dayStore, cacheSize int, ttl time.Duration) *ProgramDayRepo {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ProgramDayRepo{
		store:         store,
		cache:         freecache.NewCache(cacheSize),
		expireSeconds: int(ttl.Seconds()),
	}
}

func dayCacheKey(programID string, dayNumber int) []byte {
	return []byte(fmt.Sprintf("day::%s::%d", programID, dayNumber))
}

func countCacheKey(programID string) []byte {
	return []byte("count::" + programID)
}

func (r *ProgramDayRepo) GetByProgramAndDay(ctx context.Context, programID string, dayNumber int) (*program.ProgramDay, error) {
	cacheKey := dayCacheKey(programID, dayNumber)
	if dayBytes, err := r.cache.Get(cacheKey); err == nil {
		day := &program.ProgramDay{}
		if err := json.Unmarshal(dayBytes, day); err == nil {
			return day, nil
		} else {
			log.Errorf("failed to unmarshal program day %s/%d from cache: %s", programID, dayNumber, err)
		}
	}

	day, err := r.store.GetByProgramAndDay(ctx, programID, dayNumber)
	if err != nil {
		return nil, err
	}

	dayBytes, err := json.Marshal(day)
	if err != nil {
		log.Errorf("failed to marshal program day %s/%d: %s", programID, dayNumber, err)
		return day, nil
	}
	if err := r.cache.Set(cacheKey, dayBytes, r.expireSeconds); err != nil {
		log.Errorf("failed to cache program day %s/%d: %s", programID, dayNumber, err)
	}
	return day, nil
}

// GetTotalDayCount caches only non-zero counts, so an unseeded program is
// picked up as soon as its days land in the store.
func (r *ProgramDayRepo) GetTotalDayCount(ctx context.Context, programID string) (int, error) {
	cacheKey := countCacheKey(programID)
	if countBytes, err := r.cache.Get(cacheKey); err == nil {
		if count, err := strconv.Atoi(string(countBytes)); err == nil {
			return count, nil
		}
	}

	count, err := r.store.GetTotalDayCount(ctx, programID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		if err := r.cache.Set(cacheKey, []byte(strconv.Itoa(count)), r.expireSeconds); err != nil {
			log.Errorf("failed to cache day count of %s: %s", programID, err)
		}
	}
	return count, nil
}

func (r *ProgramDayRepo) InsertDays(ctx context.Context, days []program.ProgramDay) error {
	err := r.store.InsertDays(ctx, days)
	for _, d := range days {
		r.cache.Del(dayCacheKey(d.ProgramID, d.DayNumber))
		r.cache.Del(countCacheKey(d.ProgramID))
	}
	return err
}

// Stats reports cache hits and misses.
func (r *ProgramDayRepo) Stats() (hits, misses int64) {
	return r.cache.HitCount(), r.cache.MissCount()
}
