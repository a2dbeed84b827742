// services/cleanup.go - Stale guest account cleanup
package services

import (
	"log"
	"sync"
	"time"

	"moneytree/storage"
)

// CleanupService removes guest accounts that have gone quiet. Guests are
// created freely by the auth endpoint, so without this they accumulate
// forever.
type CleanupService struct {
	store    storage.Store
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewCleanupService(store storage.Store, interval, maxAge time.Duration) *CleanupService {
	return &CleanupService{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background worker.
func (s *CleanupService) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed, err := s.CleanupGuests(); err != nil {
					log.Printf("Guest cleanup failed: %v", err)
				} else if removed > 0 {
					log.Printf("Cleaned up %d stale guest accounts", removed)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop shuts the worker down and waits for it to exit.
func (s *CleanupService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// CleanupGuests deletes every guest account whose last activity (or creation,
// if it never came back) is older than maxAge. Returns how many were removed.
func (s *CleanupService) CleanupGuests() (int, error) {
	users, err := s.store.GetAllUsers()
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	for _, user := range users {
		if !user.IsGuest {
			continue
		}
		lastSeen := user.CreatedAt
		if user.LastActiveDate != nil && user.LastActiveDate.After(lastSeen) {
			lastSeen = *user.LastActiveDate
		}
		if lastSeen.After(cutoff) {
			continue
		}
		if err := s.store.DeleteUser(user.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
