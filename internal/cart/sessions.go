package cart

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	log "github.com/sirupsen/logrus"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Sessions hands out one Store per session ID. Stores are loaded lazily from the repository,
// written back after every mutation and dropped from memory once idle.
type Sessions struct {
	repo repo.CartRepository

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessions(r repo.CartRepository) *Sessions {
	return &Sessions{
		repo:     r,
		sessions: map[string]*session{},
	}
}

// Get returns the cart of the session, creating an empty one for unknown sessions. The
// repository is read without holding the registry lock.
func (s *Sessions) Get(ctx context.Context, sessionID string) (*Store, error) {
	if store, ok := s.lookup(sessionID); ok {
		return store, nil
	}

	items, err := s.repo.Load(ctx, sessionID)
	if err != nil && !errors.Is(err, repo.ErrCartNotFound) {
		return nil, errors.Wrapf(err, "could not load cart for session %s", sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another request may have loaded the same session meanwhile.
	if sess, ok := s.sessions[sessionID]; ok {
		sess.lastSeen = time.Now()
		return sess.store, nil
	}

	store := NewStore(items...)
	store.Subscribe(s.persister(sessionID))
	s.sessions[sessionID] = &session{store: store, lastSeen: time.Now()}
	return store, nil
}

func (s *Sessions) lookup(sessionID string) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess.store, true
}

func (s *Sessions) persister(sessionID string) Listener {
	return func(items []models.CartLineItem) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		var err error
		if len(items) == 0 {
			err = s.repo.Delete(ctx, sessionID)
		} else {
			err = s.repo.Save(ctx, sessionID, items)
		}
		if err != nil {
			log.WithField("session_id", sessionID).Printf("could not persist cart: %v", err)
		}
	}
}

// Len is the number of carts currently held in memory.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle drops carts not touched for longer than idle. Their persisted copy is kept.
func (s *Sessions) EvictIdle(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if time.Since(sess.lastSeen) > idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// StartCleanupLoop evicts idle carts every interval until ctx is done.
func (s *Sessions) StartCleanupLoop(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(idle); n > 0 {
				log.Printf("evicted %d idle carts", n)
			}
		}
	}
}
