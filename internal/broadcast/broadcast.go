package broadcast

import (
	"encoding/json"
	"log/slog"

	"bombtrivia/internal/events"
	"bombtrivia/internal/wshub"
)

// Broadcaster forwards a room's outbound events to its WebSocket hub.
// Delivery is fire-and-forget; the engine never waits on a client.
type Broadcaster struct {
	bus *events.Bus
	hub *wshub.Hub
	ch  chan events.Event
}

func NewBroadcaster(bus *events.Bus, hub *wshub.Hub) *Broadcaster {
	b := &Broadcaster{bus: bus, hub: hub, ch: bus.Subscribe()}
	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for ev := range b.ch {
		data, err := json.Marshal(ev)
		if err != nil {
			slog.Error("marshaling room event", "event", ev.EventName(), "error", err)
			continue
		}
		b.hub.Broadcast(wshub.ServerMessage{Event: ev.EventName(), Data: data})
	}
}

// Close detaches the broadcaster from its bus and stops the forwarding
// goroutine.
func (b *Broadcaster) Close() {
	b.bus.Unsubscribe(b.ch)
}
