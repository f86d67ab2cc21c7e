package stats

import (
	"os"
	"testing"
	"time"

	"bombtrivia/internal/db"
	"bombtrivia/internal/game"
)

func getTestQueries(t *testing.T) *Queries {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	database, err := db.Connect(dsn)
	if err != nil {
		t.Fatalf("Connect() error: %v", err)
	}
	if err := database.Migrate(); err != nil {
		t.Fatalf("Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		// Clean up test data
		database.Exec("DELETE FROM eliminations")
		database.Exec("DELETE FROM matches")
		database.Close()
	})
	return NewQueries(database)
}

func finishedMatch(t *testing.T, q *Queries, roomCode, winner string) string {
	t.Helper()
	matchID, err := q.DB.CreateMatch(roomCode, 15)
	if err != nil {
		t.Fatalf("CreateMatch() error: %v", err)
	}
	if err := q.DB.EndMatch(matchID, winner); err != nil {
		t.Fatalf("EndMatch() error: %v", err)
	}
	return matchID
}

func TestGetLeaderboard(t *testing.T) {
	q := getTestQueries(t)

	finishedMatch(t, q, "AAAA", "alice")
	finishedMatch(t, q, "BBBB", "alice")
	finishedMatch(t, q, "CCCC", "bob")
	finishedMatch(t, q, "DDDD", game.NoWinner)

	entries, err := q.GetLeaderboard(10)
	if err != nil {
		t.Fatalf("GetLeaderboard() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (no-winner matches excluded)", len(entries))
	}
	if entries[0].PlayerName != "alice" || entries[0].Wins != 2 || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want alice with 2 wins at rank 1", entries[0])
	}
	if entries[1].PlayerName != "bob" || entries[1].Rank != 2 {
		t.Errorf("second entry = %+v, want bob at rank 2", entries[1])
	}
}

func TestGetPlayerLifetimeStats(t *testing.T) {
	q := getTestQueries(t)

	finishedMatch(t, q, "AAAA", "bob")
	matchID := finishedMatch(t, q, "BBBB", "alice")

	now := time.Now()
	evs := []db.EliminationEvent{
		{MatchID: matchID, PlayerName: "bob", Cause: "timeout", CorrectAnswer: "paris", AliveLeft: 2, OccurredAt: now},
		{MatchID: matchID, PlayerName: "bob", Cause: "wrong-answer", CorrectAnswer: "56", AliveLeft: 4, OccurredAt: now},
	}
	if err := q.DB.BatchRecordEliminations(evs); err != nil {
		t.Fatalf("BatchRecordEliminations() error: %v", err)
	}

	stats, err := q.GetPlayerLifetimeStats("bob")
	if err != nil {
		t.Fatalf("GetPlayerLifetimeStats() error: %v", err)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.Eliminations != 2 {
		t.Errorf("Eliminations = %d, want 2", stats.Eliminations)
	}
	if stats.Timeouts != 1 || stats.WrongAnswers != 1 {
		t.Errorf("Timeouts = %d, WrongAnswers = %d, want 1 and 1", stats.Timeouts, stats.WrongAnswers)
	}
	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
	if stats.AvgAliveLeft != 3 {
		t.Errorf("AvgAliveLeft = %v, want 3", stats.AvgAliveLeft)
	}
	if !hasBadge(stats.Badges, BadgeSurvivor) {
		t.Errorf("badges = %v, want survivor for a player with a win", stats.Badges)
	}
}

func TestGetRecentMatches(t *testing.T) {
	q := getTestQueries(t)

	finishedMatch(t, q, "AAAA", "alice")
	finishedMatch(t, q, "BBBB", "bob")

	matches, err := q.GetRecentMatches(1)
	if err != nil {
		t.Fatalf("GetRecentMatches() error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1 with limit 1", len(matches))
	}
	if matches[0].Winner == nil {
		t.Error("finished match should carry its winner")
	}
}
