package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"bombtrivia/internal/stats"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "match history requires a database connection", http.StatusServiceUnavailable)
		return
	}
	entries, err := stats.NewQueries(s.DB).GetLeaderboard(queryLimit(r, 10))
	if err != nil {
		slog.Error("querying leaderboard", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []stats.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "match history requires a database connection", http.StatusServiceUnavailable)
		return
	}
	name := chi.URLParam(r, "name")
	playerStats, err := stats.NewQueries(s.DB).GetPlayerLifetimeStats(name)
	if err != nil {
		slog.Error("querying player stats", "player", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, playerStats)
}

func (s *Server) handleRecentMatches(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "match history requires a database connection", http.StatusServiceUnavailable)
		return
	}
	matches, err := stats.NewQueries(s.DB).GetRecentMatches(queryLimit(r, 20))
	if err != nil {
		slog.Error("querying recent matches", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []stats.MatchSummary{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func queryLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return fallback
	}
	return n
}
