package wshub

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRegisterAndBroadcast(t *testing.T) {
	h := NewHub()

	c1 := &Client{PlayerID: "p1", Name: "Alice", Send: make(chan []byte, 16)}
	c2 := &Client{PlayerID: "p2", Name: "Bob", Send: make(chan []byte, 16)}

	h.Register(c1)
	h.Register(c2)

	msg := ServerMessage{Event: "game-over", Data: json.RawMessage(`{"winner":"Alice"}`)}
	h.Broadcast(msg)

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.Send:
			var got ServerMessage
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Event != "game-over" {
				t.Fatalf("unexpected message: %+v", got)
			}
			if string(got.Data) != `{"winner":"Alice"}` {
				t.Fatalf("unexpected payload: %s", got.Data)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("%s did not receive message", c.PlayerID)
		}
	}
}

func TestSendTo(t *testing.T) {
	h := NewHub()

	c1 := &Client{PlayerID: "p1", Send: make(chan []byte, 16)}
	c2 := &Client{PlayerID: "p2", Send: make(chan []byte, 16)}
	h.Register(c1)
	h.Register(c2)

	h.SendTo("p1", ServerMessage{Event: "new-question"})

	select {
	case <-c1.Send:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("p1 did not receive message")
	}

	select {
	case <-c2.Send:
		t.Fatal("p2 should not receive a direct message for p1")
	default:
	}

	// Unknown recipient should not panic
	h.SendTo("ghost", ServerMessage{Event: "new-question"})
}

func TestUnregisterClosesSend(t *testing.T) {
	h := NewHub()

	c := &Client{PlayerID: "p1", Send: make(chan []byte, 16)}
	h.Register(c)
	h.Unregister("p1")

	if _, ok := <-c.Send; ok {
		t.Fatal("Send should be closed after Unregister")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestUnregisterNonexistent(t *testing.T) {
	h := NewHub()
	// Should not panic
	h.Unregister("nonexistent")
}

func TestBroadcastDropsWhenFull(t *testing.T) {
	h := NewHub()

	// Channel with capacity 1
	c := &Client{PlayerID: "p1", Send: make(chan []byte, 1)}
	h.Register(c)

	// Fill the channel
	c.Send <- []byte("filler")

	// This should not block — message dropped
	h.Broadcast(ServerMessage{Event: "bomb-timer"})

	// Only the filler should be in the channel
	data := <-c.Send
	if string(data) != "filler" {
		t.Fatalf("expected filler, got: %s", data)
	}

	select {
	case <-c.Send:
		t.Fatal("should be empty after draining filler")
	default:
	}
}
