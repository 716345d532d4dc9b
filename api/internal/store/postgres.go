package store

import (
	"context"
	"database/sql"
)

// PostgresLeaderboard keeps the leaderboard in a single Postgres table.
type PostgresLeaderboard struct{ DB *sql.DB }

func NewPostgresLeaderboard(db *sql.DB) *PostgresLeaderboard {
	return &PostgresLeaderboard{DB: db}
}

// EnsureSchema creates the leaderboard table if it does not exist yet.
func (r *PostgresLeaderboard) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists leaderboard (
  user_id  text primary key,
  username text unique,
  total_xp integer not null default 0
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// UpsertAccumulate is a single atomic statement; the row-level conflict
// update serializes concurrent gains for the same user_id.
func (r *PostgresLeaderboard) UpsertAccumulate(ctx context.Context, userID, username string, xpGained int) error {
	const q = `
insert into leaderboard (user_id, username, total_xp)
values ($1, $2, $3)
on conflict (user_id)
do update set total_xp = leaderboard.total_xp + excluded.total_xp`
	_, err := r.DB.ExecContext(ctx, q, userID, username, xpGained)
	return err
}

func (r *PostgresLeaderboard) TopN(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	const q = `
select user_id, username, total_xp
from leaderboard
order by total_xp desc, user_id asc
limit $1`
	rows, err := r.DB.QueryContext(ctx, q, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardEntry, 0, n)
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.TotalXP); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresLeaderboard) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
