// Package sessions keeps live maze sessions in memory. Generated mazes are
// never written anywhere else.
package sessions

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/maze"
)

var Log = logrus.New()

var ErrNotFound = errors.New("session not found")

// State is a copy of a live session taken under its lock.
type State struct {
	ID        uuid.UUID
	StartedAt time.Time
	maze.Snapshot
}

type entry struct {
	mu        sync.Mutex
	session   *maze.Session
	startedAt time.Time
	touchedAt time.Time
	deleted   bool
}

func (e *entry) state(id uuid.UUID) State {
	return State{ID: id, StartedAt: e.startedAt, Snapshot: e.session.Snapshot()}
}

type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[uuid.UUID]*entry),
		now:     time.Now,
	}
}

type CreateOption func(*createOptions)

type createOptions struct {
	rnd                   *rand.Rand
	allowMovesAfterFinish bool
}

// WithSeed makes the session's mazes reproducible.
func WithSeed(seed uint64) CreateOption {
	return func(o *createOptions) {
		o.rnd = maze.NewSeededRand(seed)
	}
}

func WithMovesAfterFinish() CreateOption {
	return func(o *createOptions) {
		o.allowMovesAfterFinish = true
	}
}

func (s *Store) Create(params maze.Params, options ...CreateOption) (State, error) {
	opts := &createOptions{}
	for _, option := range options {
		option(opts)
	}
	session, err := maze.NewSession(params, opts.rnd)
	if err != nil {
		return State{}, err
	}
	session.AllowMovesAfterFinish = opts.allowMovesAfterFinish

	now := s.now()
	e := &entry{session: session, startedAt: now, touchedAt: now}
	id := uuid.New()

	s.mu.Lock()
	s.entries[id] = e
	s.mu.Unlock()

	Log.WithFields(logrus.Fields{
		"id":     id,
		"width":  params.Width,
		"height": params.Height,
	}).Debug("session created")

	return e.state(id), nil
}

func (s *Store) lookup(id uuid.UUID) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Store) Snapshot(id uuid.UUID) (State, error) {
	e, err := s.lookup(id)
	if err != nil {
		return State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return State{}, ErrNotFound
	}
	return e.state(id), nil
}

// Update runs fn with exclusive access to the session and returns the state
// it left behind, even when fn fails. A regeneration inside fn restarts the
// run clock.
func (s *Store) Update(id uuid.UUID, fn func(*maze.Session) error) (State, error) {
	e, err := s.lookup(id)
	if err != nil {
		return State{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return State{}, ErrNotFound
	}

	generation := e.session.Generation()
	err = fn(e.session)
	now := s.now()
	if e.session.Generation() != generation {
		e.startedAt = now
	}
	e.touchedAt = now
	return e.state(id), err
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	e.deleted = true
	e.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep evicts sessions untouched for longer than maxIdle and returns how
// many were removed. Sessions busy in an Update are kept.
func (s *Store) Sweep(maxIdle time.Duration) int {
	deadline := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.touchedAt.Before(deadline) {
			e.deleted = true
			delete(s.entries, id)
			evicted++
		}
		e.mu.Unlock()
	}
	return evicted
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval, maxIdle time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				Log.WithFields(logrus.Fields{
					"evicted":   n,
					"remaining": s.Len(),
				}).Info("swept idle sessions")
			}
		}
	}
}
