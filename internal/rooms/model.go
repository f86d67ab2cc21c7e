package rooms

import (
	"time"

	"bombtrivia/internal/broadcast"
	"bombtrivia/internal/events"
	"bombtrivia/internal/game"
	"bombtrivia/internal/wshub"
)

// Room bundles one game with its event bus and connection fan-out. No two
// rooms share state; each may be driven fully in parallel.
type Room struct {
	Code        string
	Game        *game.Game
	Bus         *events.Bus
	Hub         *wshub.Hub
	Broadcaster *broadcast.Broadcaster
	CreatedAt   time.Time
}

// Close releases every bus subscriber, stopping the broadcaster and any
// recorder attached to the room.
func (r *Room) Close() {
	r.Bus.Close()
}
