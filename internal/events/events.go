package events

import "sync"

// Elimination causes, carried for match history but not sent on the wire.
const (
	CauseWrongAnswer = "wrong-answer"
	CauseTimeout     = "timeout"
	CauseDisconnect  = "disconnect"
)

// Event is one outbound room event. EventName is the wire name clients
// subscribe to.
type Event interface {
	EventName() string
}

type RosterUpdated struct {
	Players []string `json:"players"`
}

func (RosterUpdated) EventName() string { return "room-players" }

type AliveUpdated struct {
	Alive []string `json:"alivePlayers"`
}

func (AliveUpdated) EventName() string { return "alive-players" }

type GameStarted struct {
	Starter string   `json:"starter"`
	Alive   []string `json:"alivePlayers"`
}

func (GameStarted) EventName() string { return "game-started" }

type BombUpdated struct {
	CurrentPlayer string `json:"currentPlayer"`
}

func (BombUpdated) EventName() string { return "bomb-updated" }

type NewQuestion struct {
	Prompt string `json:"question"`
}

func (NewQuestion) EventName() string { return "new-question" }

type BombTimer struct {
	CurrentPlayer string `json:"currentPlayer"`
	Time          int    `json:"time"`
}

func (BombTimer) EventName() string { return "bomb-timer" }

type PlayerEliminated struct {
	Player        string   `json:"player"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Alive         []string `json:"alivePlayers"`
	Cause         string   `json:"-"`
}

func (PlayerEliminated) EventName() string { return "player-eliminated" }

type GameOver struct {
	Winner string `json:"winner"`
}

func (GameOver) EventName() string { return "game-over" }

// Bus fans room events out to any number of subscribers. Publishing never
// blocks: a subscriber that cannot keep up loses events rather than
// stalling the room.
type Bus struct {
	mu     sync.Mutex
	subs   map[chan Event]bool
	closed bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[chan Event]bool)}
}

func (b *Bus) Subscribe() chan Event {
	ch := make(chan Event, 64)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = true
	return ch
}

func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[ch] {
		delete(b.subs, ch)
		close(ch)
	}
}

func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// subscriber buffer full
		}
	}
}

// Close releases every subscriber. Publishes after Close are dropped.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
