// Package models defines the wire shapes exchanged with clients. The
// envelope and payloads mirror the browser client's message contract.
package models

import (
	"encoding/json"

	"github.com/pefman/monster-mayhem/internal/game"
)

// WsMsg is the outbound JSON envelope: Type names the event, Data carries
// the payload.
type WsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// ClientMsg is the inbound envelope; Data stays raw until the handler for
// Type decodes it.
type ClientMsg struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Action is the playerAction payload. Type selects which of the remaining
// fields apply.
type Action struct {
	Type        string           `json:"type"` // placeMonster | moveMonster | endTurn
	MonsterType game.MonsterType `json:"monsterType,omitempty"`
	MonsterID   string           `json:"monsterId,omitempty"`
	Position    game.Position    `json:"position"`
}

const (
	ActionPlaceMonster = "placeMonster"
	ActionMoveMonster  = "moveMonster"
	ActionEndTurn      = "endTurn"
)

// PlayerAction wraps an Action with the session it targets.
type PlayerAction struct {
	GameID string `json:"gameId"`
	Action Action `json:"action"`
}

// GameState is the board snapshot broadcast after every processed action.
type GameState struct {
	Monsters    map[string]*game.Monster `json:"monsters"`
	CurrentTurn string                   `json:"currentTurn"`
}

// GameJoined is the reply to a successful joinGame.
type GameJoined struct {
	GameID    string              `json:"gameId"`
	GameState GameState           `json:"gameState"`
	Players   []*game.Participant `json:"players"`
}

// StateUpdate is the updateGameState broadcast payload.
type StateUpdate struct {
	GameState GameState           `json:"gameState"`
	Players   []*game.Participant `json:"players"`
}

// StatsUpdate is the updateStats payload. Stats is either one player's
// record (on join) or the full per-player map (on broadcast).
type StatsUpdate struct {
	Stats      interface{} `json:"stats"`
	TotalGames int         `json:"totalGames"`
}

// GameEnded reports the outcome: the winner's id, or null on mutual
// elimination.
type GameEnded struct {
	Winner *string `json:"winner"`
}

// Snapshot builds a GameState from a session.
func Snapshot(s *game.Session) GameState {
	return GameState{Monsters: s.Monsters, CurrentTurn: s.CurrentTurn}
}
