// Package hub wires WebSocket connections to the game engine. Message
// handlers never mutate game state directly: every join, action, and
// disconnect is enqueued on the action serializer, which re-validates turn
// ownership at dequeue time.
package hub

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pefman/monster-mayhem/internal/game"
	"github.com/pefman/monster-mayhem/internal/models"
	"github.com/pefman/monster-mayhem/internal/queue"
	"github.com/pefman/monster-mayhem/internal/stats"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Hub owns the session registry, the statistics store, and the serializer
// that orders all state mutation.
type Hub struct {
	registry *game.Registry
	stats    *stats.Store
	queue    *queue.Serializer

	clientsMu sync.RWMutex
	clients   map[string]*Client // participant id -> connection
}

// New builds a hub around the given registry and stats store and starts the
// action serializer worker.
func New(registry *game.Registry, store *stats.Store) *Hub {
	return &Hub{
		registry: registry,
		stats:    store,
		queue:    queue.New(64),
		clients:  make(map[string]*Client),
	}
}

// Close drains the serializer and stops its worker.
func (h *Hub) Close() { h.queue.Close() }

// HandleWS upgrades the connection, assigns the participant id, and runs
// the read loop until disconnect.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade error: %v", err)
		return
	}
	c := newClient(uuid.New().String(), conn)
	h.clientsMu.Lock()
	h.clients[c.ID] = c
	h.clientsMu.Unlock()
	log.Printf("ws: connect id=%s from=%s", c.ID, r.RemoteAddr)

	// Tell the client its own participant id.
	if err := c.Send(models.WsMsg{Type: "you", Data: map[string]string{"id": c.ID}}); err != nil {
		log.Printf("ws: write error to %s: %v", c.ID, err)
	}
	h.readLoop(c)
}

func (h *Hub) readLoop(c *Client) {
	defer func() {
		c.close()
		h.clientsMu.Lock()
		delete(h.clients, c.ID)
		h.clientsMu.Unlock()
		log.Printf("ws: closed id=%s", c.ID)
		h.queue.Enqueue(func() { h.leave(c.ID) })
	}()
	for {
		var in models.ClientMsg
		if err := c.conn.ReadJSON(&in); err != nil {
			return
		}
		switch in.Type {
		case "joinGame":
			var gameID string
			_ = json.Unmarshal(in.Data, &gameID)
			h.queue.Enqueue(func() { h.join(c, gameID) })
		case "playerAction":
			var pa models.PlayerAction
			if err := json.Unmarshal(in.Data, &pa); err != nil {
				h.sendError(c, "Malformed action")
				continue
			}
			h.queue.Enqueue(func() { h.action(c, pa) })
		default:
			log.Printf("ws: unknown message type %q from %s", in.Type, c.ID)
		}
	}
}

// join runs on the serializer worker.
func (h *Hub) join(c *Client, gameID string) {
	if gameID == "" {
		h.sendError(c, "Game ID required")
		return
	}
	s, err := h.registry.Join(gameID, c.ID)
	if err != nil {
		h.sendError(c, err.Error())
		return
	}
	h.stats.Touch(c.ID)
	log.Printf("session %s: %s joined (%d/2)", gameID, c.ID, len(s.Participants))

	h.send(c, models.WsMsg{Type: "gameJoined", Data: models.GameJoined{
		GameID:    gameID,
		GameState: models.Snapshot(s),
		Players:   s.Participants,
	}})
	h.send(c, models.WsMsg{Type: "updateStats", Data: models.StatsUpdate{
		Stats:      h.stats.Player(c.ID),
		TotalGames: h.stats.TotalGames(),
	}})
	h.broadcastState(s)
}

// action runs on the serializer worker. State may have changed since the
// message was enqueued, so turn ownership is checked here.
func (h *Hub) action(c *Client, pa models.PlayerAction) {
	s := h.registry.Get(pa.GameID)
	if s == nil || s.CurrentTurn != c.ID {
		h.sendError(c, game.ErrNotYourTurn.Error())
		return
	}
	var err error
	switch pa.Action.Type {
	case models.ActionPlaceMonster:
		err = s.PlaceMonster(c.ID, pa.Action.MonsterType, pa.Action.Position)
	case models.ActionMoveMonster:
		err = s.MoveMonster(c.ID, pa.Action.MonsterID, pa.Action.Position)
		if err == nil {
			log.Printf("session %s: moved monster %s to %s", s.ID, pa.Action.MonsterID, pa.Action.Position)
		}
	case models.ActionEndTurn:
		s.UpdateTurnOrder()
	default:
		err = game.ErrInvalidMove
	}
	if err != nil {
		h.sendError(c, err.Error())
		return
	}
	h.checkGameEnd(s)
	h.broadcastState(s)
}

// leave runs on the serializer worker.
func (h *Hub) leave(playerID string) {
	for _, s := range h.registry.Leave(playerID) {
		h.broadcastState(s)
	}
}

// checkGameEnd records the outcome, notifies the session, and destroys it
// when at most one participant is still under the elimination limit.
func (h *Hub) checkGameEnd(s *game.Session) {
	winner, ended := s.Concluded()
	if !ended {
		return
	}
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	h.stats.RecordGameEnd(winner, ids)

	var winnerPtr *string
	if winner != "" {
		winnerPtr = &winner
	}
	h.broadcast(s, models.WsMsg{Type: "gameEnded", Data: models.GameEnded{Winner: winnerPtr}})
	h.registry.Remove(s.ID)
	log.Printf("session %s: ended, winner=%q", s.ID, winner)
}

// broadcastState pushes the board snapshot and the global stats record to
// every participant of the session.
func (h *Hub) broadcastState(s *game.Session) {
	if h.registry.Get(s.ID) == nil {
		return
	}
	h.broadcast(s, models.WsMsg{Type: "updateGameState", Data: models.StateUpdate{
		GameState: models.Snapshot(s),
		Players:   s.Participants,
	}})
	snap := h.stats.Snapshot()
	h.broadcast(s, models.WsMsg{Type: "updateStats", Data: models.StatsUpdate{
		Stats:      snap.PlayerStats,
		TotalGames: snap.TotalGames,
	}})
}

func (h *Hub) broadcast(s *game.Session, m models.WsMsg) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	for _, p := range s.Participants {
		if c, ok := h.clients[p.ID]; ok {
			h.send(c, m)
		}
	}
}

func (h *Hub) send(c *Client, m models.WsMsg) {
	if err := c.Send(m); err != nil {
		log.Printf("ws: write error to %s: %v", c.ID, err)
	}
}

func (h *Hub) sendError(c *Client, msg string) {
	h.send(c, models.WsMsg{Type: "error", Data: msg})
}

// SessionInfo is the debug-endpoint view of one active session.
type SessionInfo struct {
	ID          string   `json:"id"`
	Players     []string `json:"players"`
	CurrentTurn string   `json:"currentTurn"`
	Monsters    int      `json:"monsters"`
}

// Sessions snapshots the active sessions. The read runs on the serializer
// worker so it never observes a half-applied action.
func (h *Hub) Sessions() []SessionInfo {
	done := make(chan []SessionInfo, 1)
	h.queue.Enqueue(func() {
		out := make([]SessionInfo, 0, h.registry.Len())
		for _, s := range h.registry.All() {
			info := SessionInfo{ID: s.ID, CurrentTurn: s.CurrentTurn, Monsters: len(s.Monsters)}
			for _, p := range s.Participants {
				info.Players = append(info.Players, p.ID)
			}
			out = append(out, info)
		}
		done <- out
	})
	return <-done
}

// Stats exposes the statistics store for the HTTP read endpoints.
func (h *Hub) Stats() *stats.Store { return h.stats }
