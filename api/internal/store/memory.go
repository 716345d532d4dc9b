package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryLeaderboard mirrors the Postgres semantics in process memory.
// Used by tests and for running the gateway without a database.
type MemoryLeaderboard struct {
	mu      sync.Mutex
	entries map[string]*LeaderboardEntry
}

func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{entries: make(map[string]*LeaderboardEntry)}
}

func (m *MemoryLeaderboard) UpsertAccumulate(_ context.Context, userID, username string, xpGained int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[userID]; ok {
		e.TotalXP += xpGained
		return nil
	}
	m.entries[userID] = &LeaderboardEntry{UserID: userID, Username: username, TotalXP: xpGained}
	return nil
}

func (m *MemoryLeaderboard) TopN(_ context.Context, n int) ([]LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]LeaderboardEntry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalXP != out[j].TotalXP {
			return out[i].TotalXP > out[j].TotalXP
		}
		return out[i].UserID < out[j].UserID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MemoryLeaderboard) Ping(context.Context) error { return nil }
