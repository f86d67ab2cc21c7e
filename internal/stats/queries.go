package stats

import (
	"fmt"

	"bombtrivia/internal/db"
	"bombtrivia/internal/game"
)

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

// GetLeaderboard ranks players by wins. The no-winner sentinel never
// appears on the board.
func (q *Queries) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	rows, err := q.DB.Query(`
		SELECT winner, COUNT(*) AS wins
		FROM matches
		WHERE winner IS NOT NULL AND winner <> $1
		GROUP BY winner
		ORDER BY wins DESC, winner ASC
		LIMIT $2
	`, game.NoWinner, limit)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerName, &e.Wins); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetPlayerLifetimeStats aggregates one player's career by display name.
func (q *Queries) GetPlayerLifetimeStats(playerName string) (*PlayerLifetimeStats, error) {
	stats := &PlayerLifetimeStats{PlayerName: playerName}

	err := q.DB.QueryRow(`
		SELECT COUNT(*) FROM matches WHERE winner = $1
	`, playerName).Scan(&stats.Wins)
	if err != nil {
		return nil, fmt.Errorf("counting wins: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE cause = 'timeout'),
			COUNT(*) FILTER (WHERE cause = 'wrong-answer'),
			COALESCE(AVG(alive_left), 0)
		FROM eliminations
		WHERE player_name = $1
	`, playerName).Scan(&stats.Eliminations, &stats.Timeouts, &stats.WrongAnswers, &stats.AvgAliveLeft)
	if err != nil {
		return nil, fmt.Errorf("aggregating eliminations: %w", err)
	}

	stats.GamesPlayed = stats.Wins + stats.Eliminations
	stats.Badges = EvaluateLifetimeBadges(*stats)

	return stats, nil
}

// GetRecentMatches lists the most recently started matches.
func (q *Queries) GetRecentMatches(limit int) ([]MatchSummary, error) {
	rows, err := q.DB.Query(`
		SELECT id, room_code, winner, started_at, ended_at
		FROM matches
		ORDER BY started_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchSummary
	for rows.Next() {
		var m MatchSummary
		if err := rows.Scan(&m.MatchID, &m.RoomCode, &m.Winner, &m.StartedAt, &m.EndedAt); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
