// services/hub.go - Leaderboard broadcast hub
package services

import (
	"sync"
)

// LeaderboardHub fans leaderboard snapshots out to websocket subscribers.
// Sends never block: a subscriber that has fallen behind loses intermediate
// snapshots, which is fine since each snapshot is complete.
type LeaderboardHub struct {
	mu          sync.Mutex
	subscribers map[chan []LeaderboardEntry]struct{}
}

func NewLeaderboardHub() *LeaderboardHub {
	return &LeaderboardHub{
		subscribers: make(map[chan []LeaderboardEntry]struct{}),
	}
}

// Subscribe returns a channel of snapshots and a cancel func the caller must
// invoke to avoid leaks.
func (h *LeaderboardHub) Subscribe() (<-chan []LeaderboardEntry, func()) {
	ch := make(chan []LeaderboardEntry, 1)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a snapshot to every subscriber that can take it.
func (h *LeaderboardHub) Broadcast(entries []LeaderboardEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- entries:
		default:
		}
	}
}

// SubscriberCount is used by tests and the stats endpoint.
func (h *LeaderboardHub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
