package locking

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Unlock releases a lock obtained from a Locker. Safe to call once.
type Unlock func()

// Locker serializes work on a single entity key (an enrollment id, or an
// exercise/record type pair).
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

type keyedEntry struct {
	ch   chan struct{}
	refs int
}

// KeyedMutex is an in-process Locker. Entries are dropped once nobody holds
// or waits on them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*keyedEntry),
	}
}

func (km *KeyedMutex) Lock(ctx context.Context, key string) (Unlock, error) {
	km.mu.Lock()
	e, ok := km.entries[key]
	if !ok {
		e = &keyedEntry{ch: make(chan struct{}, 1)}
		km.entries[key] = e
	}
	e.refs++
	km.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		km.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			km.release(key, e)
		})
	}, nil
}

func (km *KeyedMutex) release(key string, e *keyedEntry) {
	km.mu.Lock()
	defer km.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(km.entries, key)
	}
}

func (km *KeyedMutex) size() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.entries)
}

type instrumented struct {
	locker Locker
	wait   prometheus.Observer
}

// WithWaitMetrics observes how long callers wait to obtain locks.
func WithWaitMetrics(locker Locker, wait prometheus.Observer) Locker {
	return &instrumented{
		locker: locker,
		wait:   wait,
	}
}

func (i *instrumented) Lock(ctx context.Context, key string) (Unlock, error) {
	defer func(begin time.Time) {
		i.wait.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return i.locker.Lock(ctx, key)
}
