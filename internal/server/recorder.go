package server

import (
	"log/slog"
	"time"

	"bombtrivia/internal/db"
	"bombtrivia/internal/events"
	"bombtrivia/internal/rooms"
)

const (
	eliminationBatchSize     = 50
	eliminationFlushInterval = 500 * time.Millisecond
)

// recordMatches follows one room's event stream and writes match history.
// It lives as long as the room's bus: closing the room tears it down.
func (s *Server) recordMatches(room *rooms.Room) {
	ch := room.Bus.Subscribe()
	defer room.Bus.Unsubscribe(ch)

	var matchID string
	for ev := range ch {
		switch e := ev.(type) {
		case events.GameStarted:
			id, err := s.DB.CreateMatch(room.Code, s.GameCfg.RoundSeconds)
			if err != nil {
				slog.Error("creating match record", "room", room.Code, "error", err)
				continue
			}
			matchID = id
		case events.PlayerEliminated:
			if matchID == "" {
				continue
			}
			select {
			case s.Eliminations <- db.EliminationEvent{
				MatchID:       matchID,
				PlayerName:    e.Player,
				Cause:         e.Cause,
				CorrectAnswer: e.CorrectAnswer,
				AliveLeft:     len(e.Alive),
				OccurredAt:    time.Now(),
			}:
			default:
				slog.Warn("elimination buffer full, dropping record", "room", room.Code)
			}
		case events.GameOver:
			if matchID != "" {
				if err := s.DB.EndMatch(matchID, e.Winner); err != nil {
					slog.Error("ending match record", "match", matchID, "error", err)
				}
				matchID = ""
			}
		}
	}
}

// eliminationBatchWriter drains the shared elimination buffer into the
// database, flushing on size or on a timer, whichever comes first.
func eliminationBatchWriter(database *db.DB, buffer <-chan db.EliminationEvent) {
	ticker := time.NewTicker(eliminationFlushInterval)
	defer ticker.Stop()

	batch := make([]db.EliminationEvent, 0, eliminationBatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := database.BatchRecordEliminations(batch); err != nil {
			slog.Error("writing elimination batch", "count", len(batch), "error", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev, ok := <-buffer:
			if !ok {
				flush()
				return
			}
			batch = append(batch, ev)
			if len(batch) >= eliminationBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
