package rooms

import (
	"fmt"
	"sync"
	"time"

	"bombtrivia/internal/broadcast"
	"bombtrivia/internal/events"
	"bombtrivia/internal/game"
	"bombtrivia/internal/questions"
	"bombtrivia/internal/wshub"
)

const staleTTL = 1 * time.Hour

// Store is the process-wide room registry, keyed by room code. Pure
// bookkeeping; all game logic lives in the rooms themselves.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	cfg   game.Config
	src   questions.Source
}

func NewStore(cfg game.Config, src questions.Source) *Store {
	s := &Store{
		rooms: make(map[string]*Room),
		cfg:   cfg,
		src:   src,
	}
	go s.sweepStale()
	return s
}

// GetOrCreate returns the room for code, creating it first if absent.
// An empty code asks for a generated one. The second return reports
// whether the room was created by this call.
func (s *Store) GetOrCreate(code string) (*Room, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if code != "" {
		if room, exists := s.rooms[code]; exists {
			return room, false, nil
		}
		room := s.newRoomLocked(code)
		return room, true, nil
	}

	// Try up to 10 times to generate a unique code
	for range 10 {
		generated, err := GenerateCode()
		if err != nil {
			return nil, false, fmt.Errorf("generating room code: %w", err)
		}
		if _, exists := s.rooms[generated]; exists {
			continue
		}
		room := s.newRoomLocked(generated)
		return room, true, nil
	}
	return nil, false, fmt.Errorf("failed to generate unique room code after 10 attempts")
}

func (s *Store) newRoomLocked(code string) *Room {
	bus := events.NewBus()
	hub := wshub.NewHub()
	room := &Room{
		Code:        code,
		Game:        game.NewGame(s.src, bus, s.cfg),
		Bus:         bus,
		Hub:         hub,
		Broadcaster: broadcast.NewBroadcaster(bus, hub),
		CreatedAt:   time.Now(),
	}
	s.rooms[code] = room
	return room
}

func (s *Store) Get(code string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[code]
}

// Delete removes and closes a room. Deleting an absent code is a no-op,
// since network events may race with teardown.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[code]; ok {
		delete(s.rooms, code)
		room.Close()
	}
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		list = append(list, r)
	}
	return list
}

func (s *Store) sweepStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for code, room := range s.rooms {
			if room.Game.IsEmpty() || now.Sub(room.CreatedAt) > staleTTL {
				delete(s.rooms, code)
				room.Close()
			}
		}
		s.mu.Unlock()
	}
}
