package game

import (
	"log/slog"
	"sync"
	"time"

	"bombtrivia/internal/events"
	"bombtrivia/internal/players"
	"bombtrivia/internal/questions"
	"bombtrivia/internal/utility"
)

type Phase string

const (
	PhaseLobby    = Phase("lobby")
	PhaseRound    = Phase("round")
	PhaseFinished = Phase("finished")
)

// NoWinner is the winner sentinel for the degenerate ending where the last
// players leave at once and nobody survives.
const NoWinner = "Nobody"

type Config struct {
	RoundSeconds int
	TickInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		RoundSeconds: 15,
		TickInterval: 1 * time.Second,
	}
}

// countdown owns one scheduled ticker. Starting a question replaces the
// previous countdown atomically with the state transition; a stale tick
// that arrives after replacement fails the identity check and is dropped.
type countdown struct {
	stop chan struct{}
}

// Game is the state machine for one room. Every inbound event — join,
// start, answer, tick, disconnect — serializes on the same mutex, so the
// race between a timeout and a late answer is settled by whichever the
// room processes first; the loser no longer matches the holder guard.
type Game struct {
	mu        sync.Mutex
	phase     Phase
	hostID    string
	holder    string
	question  *questions.Question
	remaining int
	timer     *countdown
	winner    string

	Roster *players.Roster
	Events *events.Bus
	src    questions.Source
	cfg    Config
	logger *slog.Logger
}

func NewGame(src questions.Source, bus *events.Bus, cfg Config) *Game {
	return &Game{
		phase:  PhaseLobby,
		Roster: players.NewRoster(),
		Events: bus,
		src:    src,
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// Snapshot is a consistent view of the room state.
type Snapshot struct {
	Phase     Phase
	HostID    string
	HolderID  string
	Holder    string
	Question  string
	Remaining int
	Winner    string
	Players   []string
	Alive     []string
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{
		Phase:     g.phase,
		HostID:    g.hostID,
		HolderID:  g.holder,
		Holder:    g.Roster.NameOf(g.holder),
		Remaining: g.remaining,
		Winner:    g.winner,
		Players:   g.Roster.Names(),
		Alive:     g.Roster.AliveNames(),
	}
	if g.question != nil {
		s.Question = g.question.Prompt
	}
	return s
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Game) HostID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hostID
}

func (g *Game) Winner() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner
}

func (g *Game) IsEmpty() bool {
	return g.Roster.IsEmpty()
}

// Join adds a player. The first member becomes host. During the lobby the
// player also enters the alive set; joining mid-round only updates the
// roster so a running game is never affected.
func (g *Game) Join(id, name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	asAlive := g.phase == PhaseLobby
	if !g.Roster.Add(id, name, asAlive) {
		return false
	}
	if g.hostID == "" {
		g.hostID = id
	}
	g.Events.Publish(events.RosterUpdated{Players: g.Roster.Names()})
	g.Events.Publish(events.AliveUpdated{Alive: g.Roster.AliveNames()})
	return true
}

// Start begins the game. Only the host may start, and only from the lobby
// with at least two members. Anything else is dropped.
func (g *Game) Start(by string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseLobby || by != g.hostID || g.Roster.Len() < 2 {
		g.logger.Debug("start rejected", "by", by, "phase", g.phase)
		return false
	}
	g.phase = PhaseRound
	starter := utility.PickRandom(g.Roster.AliveIDs())
	g.Events.Publish(events.GameStarted{
		Starter: g.Roster.NameOf(starter),
		Alive:   g.Roster.AliveNames(),
	})
	g.askQuestionLocked(starter)
	return true
}

// Answer judges a submission from the current holder. Submissions from
// non-holders, or for a round that has already moved on, are dropped.
func (g *Game) Answer(by, text string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseRound || g.question == nil || by != g.holder {
		g.logger.Debug("answer rejected", "by", by, "phase", g.phase)
		return false
	}
	g.cancelTimerLocked()
	if g.question.Matches(text) {
		g.passBombLocked(by)
	} else {
		g.eliminateLocked(by, events.CauseWrongAnswer)
	}
	return true
}

// Disconnect removes a player entirely. A departing holder is resolved
// like an elimination, but no answer is revealed since none was judged.
func (g *Game) Disconnect(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseFinished {
		// The game is settled; only the member list may still change.
		if g.Roster.RemoveMember(id) {
			g.Events.Publish(events.RosterUpdated{Players: g.Roster.Names()})
		}
		return
	}

	name := g.Roster.NameOf(id)
	wasHolder := g.phase == PhaseRound && id == g.holder
	if !g.Roster.Remove(id) {
		return
	}
	if g.hostID == id {
		g.hostID = g.Roster.FirstID()
	}
	g.Events.Publish(events.RosterUpdated{Players: g.Roster.Names()})

	if wasHolder {
		g.cancelTimerLocked()
		g.holder = ""
		g.question = nil
		g.remaining = 0
		g.Events.Publish(events.PlayerEliminated{
			Player: name,
			Alive:  g.Roster.AliveNames(),
			Cause:  events.CauseDisconnect,
		})
		g.Events.Publish(events.AliveUpdated{Alive: g.Roster.AliveNames()})
		g.resolveLocked()
		return
	}
	g.Events.Publish(events.AliveUpdated{Alive: g.Roster.AliveNames()})
}

// askQuestionLocked hands the bomb to holderID, draws a question and arms
// a fresh countdown. Cancelling first keeps the one-live-timer invariant
// even when entered from a tick of the previous countdown.
func (g *Game) askQuestionLocked(holderID string) {
	g.cancelTimerLocked()

	q := g.src.Draw()
	g.question = &q
	g.holder = holderID
	g.remaining = g.cfg.RoundSeconds

	name := g.Roster.NameOf(holderID)
	g.Events.Publish(events.BombUpdated{CurrentPlayer: name})
	g.Events.Publish(events.NewQuestion{Prompt: q.Prompt})
	g.Events.Publish(events.BombTimer{CurrentPlayer: name, Time: g.remaining})

	c := &countdown{stop: make(chan struct{})}
	g.timer = c
	go g.runCountdown(c)
}

func (g *Game) runCountdown(c *countdown) {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if !g.tick(c) {
				return
			}
		}
	}
}

// tick handles one countdown step. Returns false once this countdown has
// finished or been superseded.
func (g *Game) tick(c *countdown) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != c || g.phase != PhaseRound {
		return false
	}
	g.remaining--
	g.Events.Publish(events.BombTimer{
		CurrentPlayer: g.Roster.NameOf(g.holder),
		Time:          g.remaining,
	})
	if g.remaining > 0 {
		return true
	}
	g.cancelTimerLocked()
	g.eliminateLocked(g.holder, events.CauseTimeout)
	return false
}

func (g *Game) cancelTimerLocked() {
	if g.timer != nil {
		close(g.timer.stop)
		g.timer = nil
	}
}

// passBombLocked moves the bomb away from a holder who answered
// correctly. A holder with nobody left to pass to is the survivor.
func (g *Game) passBombLocked(fromID string) {
	others := g.Roster.OtherAliveIDs(fromID)
	if len(others) == 0 {
		g.finishLocked(g.Roster.NameOf(fromID))
		return
	}
	g.askQuestionLocked(utility.PickRandom(others))
}

// eliminateLocked removes the holder from play after a wrong answer or a
// timeout, revealing the expected answer before the question is cleared.
func (g *Game) eliminateLocked(id string, cause string) {
	g.cancelTimerLocked()

	var revealed string
	if g.question != nil {
		revealed = g.question.Answer
	}
	name := g.Roster.NameOf(id)

	g.holder = ""
	g.question = nil
	g.remaining = 0
	g.Roster.Eliminate(id)

	g.Events.Publish(events.PlayerEliminated{
		Player:        name,
		CorrectAnswer: revealed,
		Alive:         g.Roster.AliveNames(),
		Cause:         cause,
	})
	g.Events.Publish(events.AliveUpdated{Alive: g.Roster.AliveNames()})

	g.resolveLocked()
}

// resolveLocked decides what follows a removal from the alive set.
func (g *Game) resolveLocked() {
	alive := g.Roster.AliveIDs()
	switch len(alive) {
	case 0:
		g.finishLocked(NoWinner)
	case 1:
		g.finishLocked(g.Roster.NameOf(alive[0]))
	default:
		g.askQuestionLocked(utility.PickRandom(alive))
	}
}

// finishLocked is the only entry into the terminal phase.
func (g *Game) finishLocked(winner string) {
	g.cancelTimerLocked()
	g.phase = PhaseFinished
	g.holder = ""
	g.question = nil
	g.remaining = 0
	g.winner = winner
	g.logger.Info("game over", "winner", winner)
	g.Events.Publish(events.GameOver{Winner: winner})
}
