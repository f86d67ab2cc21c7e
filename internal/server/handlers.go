package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"bombtrivia/internal/db"
	"bombtrivia/internal/game"
	"bombtrivia/internal/rooms"
	"bombtrivia/internal/wshub"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

type Server struct {
	Rooms        *rooms.Store
	GameCfg      game.Config
	DB           *db.DB                   // nil if no database configured
	Eliminations chan db.EliminationEvent // nil if no database configured
}

// session is one WebSocket connection's view of the world: a fresh
// identity per connection, mapped to at most one (room, player) pair.
type session struct {
	srv      *Server
	conn     *websocket.Conn
	playerID string
	room     *rooms.Room
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Debug("websocket accept failed", "error", err)
		return
	}

	sess := &session{
		srv:      s,
		conn:     conn,
		playerID: uuid.New().String(),
	}
	slog.Debug("connected", "player", sess.playerID)
	sess.readLoop(r.Context())
}

func (sess *session) readLoop(ctx context.Context) {
	defer sess.leave()
	for {
		_, data, err := sess.conn.Read(ctx)
		if err != nil {
			slog.Debug("disconnected", "player", sess.playerID)
			return
		}
		var msg wshub.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Debug("dropping malformed client message", "error", err)
			continue
		}
		sess.dispatch(ctx, msg)
	}
}

func (sess *session) dispatch(ctx context.Context, msg wshub.ClientMessage) {
	switch msg.Type {
	case "create-room":
		sess.enterRoom(ctx, msg, true)
	case "join-room":
		sess.enterRoom(ctx, msg, false)
	case "start-game":
		if sess.room != nil {
			sess.room.Game.Start(sess.playerID)
		}
	case "submit-answer":
		if sess.room != nil {
			sess.room.Game.Answer(sess.playerID, msg.Answer)
		}
	default:
		slog.Debug("dropping unknown message type", "type", msg.Type)
	}
}

// enterRoom binds this connection to a room. Creating with a code that is
// already occupied, or joining with no code at all, is silently dropped;
// joining an unknown code creates the room, as untracked peers expect.
func (sess *session) enterRoom(ctx context.Context, msg wshub.ClientMessage, create bool) {
	if sess.room != nil {
		return
	}
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		return
	}
	code := rooms.NormalizeCode(msg.Room)
	if !create && code == "" {
		return
	}

	room, created, err := sess.srv.Rooms.GetOrCreate(code)
	if err != nil {
		slog.Error("creating room", "error", err)
		return
	}
	if create && !created && !room.Game.IsEmpty() {
		return
	}
	if created && sess.srv.DB != nil {
		go sess.srv.recordMatches(room)
	}

	client := &wshub.Client{
		PlayerID: sess.playerID,
		Name:     name,
		Conn:     sess.conn,
		Send:     make(chan []byte, 32),
	}
	room.Hub.Register(client)
	go client.WritePump(ctx)

	// Ack before joining so the client sees its room code ahead of the
	// roster broadcast the join triggers.
	ack, _ := json.Marshal(map[string]string{"room": room.Code, "playerId": sess.playerID})
	room.Hub.SendTo(sess.playerID, wshub.ServerMessage{Event: "joined", Data: ack})

	if !room.Game.Join(sess.playerID, name) {
		room.Hub.Unregister(sess.playerID)
		return
	}
	sess.room = room
	slog.Info("player joined", "room", room.Code, "name", name)
}

func (sess *session) leave() {
	sess.conn.Close(websocket.StatusNormalClosure, "")
	if sess.room == nil {
		return
	}
	sess.room.Game.Disconnect(sess.playerID)
	sess.room.Hub.Unregister(sess.playerID)
	if sess.room.Game.IsEmpty() {
		sess.srv.Rooms.Delete(sess.room.Code)
	}
	sess.room = nil
}

type roomSummary struct {
	Code    string   `json:"code"`
	Phase   string   `json:"phase"`
	Players []string `json:"players"`
	Alive   []string `json:"alive"`
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	list := s.Rooms.List()
	summaries := make([]roomSummary, 0, len(list))
	for _, room := range list {
		snap := room.Game.Snapshot()
		summaries = append(summaries, roomSummary{
			Code:    room.Code,
			Phase:   string(snap.Phase),
			Players: snap.Players,
			Alive:   snap.Alive,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "db_error",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
