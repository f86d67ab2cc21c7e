package db

import (
	"fmt"
	"time"
)

type Match struct {
	ID           string
	RoomCode     string
	RoundSeconds int
	Winner       *string
	StartedAt    time.Time
	EndedAt      *time.Time
}

// EliminationEvent is one knocked-out player within a match.
type EliminationEvent struct {
	MatchID       string
	PlayerName    string
	Cause         string
	CorrectAnswer string
	AliveLeft     int
	OccurredAt    time.Time
}

func (d *DB) CreateMatch(roomCode string, roundSeconds int) (string, error) {
	var id string
	err := d.conn.QueryRow(`
		INSERT INTO matches (room_code, round_seconds, started_at)
		VALUES ($1, $2, now())
		RETURNING id
	`, roomCode, roundSeconds).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("creating match: %w", err)
	}
	return id, nil
}

func (d *DB) EndMatch(matchID, winner string) error {
	_, err := d.conn.Exec(`
		UPDATE matches SET winner = $2, ended_at = now() WHERE id = $1
	`, matchID, winner)
	if err != nil {
		return fmt.Errorf("ending match: %w", err)
	}
	return nil
}

func (d *DB) RecordElimination(ev EliminationEvent) error {
	_, err := d.conn.Exec(`
		INSERT INTO eliminations (match_id, player_name, cause, correct_answer, alive_left, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ev.MatchID, ev.PlayerName, ev.Cause, ev.CorrectAnswer, ev.AliveLeft, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("recording elimination: %w", err)
	}
	return nil
}

func (d *DB) BatchRecordEliminations(evs []EliminationEvent) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO eliminations (match_id, player_name, cause, correct_answer, alive_left, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, ev := range evs {
		if _, err := stmt.Exec(ev.MatchID, ev.PlayerName, ev.Cause, ev.CorrectAnswer, ev.AliveLeft, ev.OccurredAt); err != nil {
			return fmt.Errorf("recording elimination in batch: %w", err)
		}
	}

	return tx.Commit()
}
