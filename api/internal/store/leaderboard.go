package store

import "context"

// LeaderboardEntry is one row of the leaderboard.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TotalXP  int    `json:"total_xp"`
}

// Leaderboard is the keyed upsert-and-accumulate store. Implementations must
// make UpsertAccumulate atomic per user_id so concurrent gains for the same
// user never lose updates.
type Leaderboard interface {
	// UpsertAccumulate adds xpGained to the user's total, creating the entry
	// with total_xp = xpGained on first sight of userID.
	UpsertAccumulate(ctx context.Context, userID, username string, xpGained int) error

	// TopN returns up to n entries ordered by total_xp descending.
	// Ties break on user_id ascending so the ordering is stable.
	TopN(ctx context.Context, n int) ([]LeaderboardEntry, error)

	Ping(ctx context.Context) error
}
