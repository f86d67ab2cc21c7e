package stats

import "time"

type PlayerLifetimeStats struct {
	PlayerName   string  `json:"playerName"`
	GamesPlayed  int     `json:"gamesPlayed"`
	Wins         int     `json:"wins"`
	Eliminations int     `json:"eliminations"`
	Timeouts     int     `json:"timeouts"`
	WrongAnswers int     `json:"wrongAnswers"`
	AvgAliveLeft float64 `json:"avgAliveLeft"`
	Badges       []Badge `json:"badges"`
}

type LeaderboardEntry struct {
	PlayerName string `json:"playerName"`
	Wins       int    `json:"wins"`
	Rank       int    `json:"rank"`
}

type MatchSummary struct {
	MatchID   string     `json:"matchId"`
	RoomCode  string     `json:"roomCode"`
	Winner    *string    `json:"winner,omitempty"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}
