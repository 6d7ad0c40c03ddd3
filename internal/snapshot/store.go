// Package snapshot keeps an in-memory copy of members, tasks and ratings that the
// statistics engine reads from, and refreshes it whenever the database changes.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"performance-tracker-backend/internal/database/models"
	"performance-tracker-backend/internal/stats"

	"golang.org/x/sync/errgroup"
)

// MemberLister loads every member
type MemberLister interface {
	ListAll(ctx context.Context) ([]models.Member, error)
}

// TaskLister loads every task with its assignments, subtasks and attachments
type TaskLister interface {
	ListAll(ctx context.Context) ([]models.Task, error)
}

// RatingLister loads every rating
type RatingLister interface {
	ListAll(ctx context.Context) ([]models.Rating, error)
}

// Store owns the current snapshot. Readers always see one complete snapshot; a
// refresh replaces all three collections at once.
type Store struct {
	members MemberLister
	tasks   TaskLister
	ratings RatingLister

	current atomic.Pointer[stats.Snapshot]

	refreshMu sync.Mutex

	subMu       sync.RWMutex
	subscribers []func(stats.Snapshot)
}

// NewStore creates a store holding an empty snapshot until the first Refresh
func NewStore(members MemberLister, tasks TaskLister, ratings RatingLister) *Store {
	s := &Store{members: members, tasks: tasks, ratings: ratings}
	s.current.Store(&stats.Snapshot{})
	return s
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() stats.Snapshot {
	return *s.current.Load()
}

// Subscribe registers fn to be called with every new snapshot after it is published.
// fn runs synchronously inside Refresh while the refresh lock is held, so it must
// return quickly and must not call Refresh itself; doing so deadlocks.
func (s *Store) Subscribe(fn func(stats.Snapshot)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Refresh reloads the three collections concurrently and publishes them as one
// snapshot, then calls the subscribers in registration order before releasing
// the refresh lock. On failure the previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	// Serialised so a slow, older load never overwrites a newer one.
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	var next stats.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		members, err := s.members.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("load members: %w", err)
		}
		next.Members = members
		return nil
	})
	g.Go(func() error {
		tasks, err := s.tasks.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		next.Tasks = tasks
		return nil
	})
	g.Go(func() error {
		ratings, err := s.ratings.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}
		next.Ratings = ratings
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.current.Store(&next)

	s.subMu.RLock()
	subscribers := make([]func(stats.Snapshot), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.subMu.RUnlock()

	for _, fn := range subscribers {
		fn(next)
	}
	return nil
}
