package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Session is the authoritative per-game state. It is not safe for concurrent
// use: all mutation must happen on the action serializer worker.
type Session struct {
	ID           string
	Participants []*Participant // insertion order: first joiner owns row 0, second owns row 9
	Monsters     map[string]*Monster
	CurrentTurn  string
	// Removals counts monsters each participant has lost to conflict
	// resolution. Reaching EliminationLimit ends the game for them.
	Removals map[string]int

	rng *rand.Rand
	now func() time.Time
}

// NewSession creates an empty session. rng drives random tie-breaks in turn
// selection; a nil rng falls back to a time-seeded source.
func NewSession(id string, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		ID:       id,
		Monsters: make(map[string]*Monster),
		Removals: make(map[string]int),
		rng:      rng,
		now:      time.Now,
	}
}

// AddParticipant appends a participant and recomputes the turn order.
// Returns ErrSessionFull when both slots are taken.
func (s *Session) AddParticipant(playerID string) error {
	if len(s.Participants) >= 2 {
		return ErrSessionFull
	}
	s.Participants = append(s.Participants, &Participant{ID: playerID})
	s.Removals[playerID] = 0
	s.UpdateTurnOrder()
	return nil
}

// RemoveParticipant deletes a participant, their elimination counter, and
// all monsters they own. Reports whether the participant was present.
func (s *Session) RemoveParticipant(playerID string) bool {
	idx := -1
	for i, p := range s.Participants {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.Participants = append(s.Participants[:idx], s.Participants[idx+1:]...)
	delete(s.Removals, playerID)
	for id, m := range s.Monsters {
		if m.PlayerID == playerID {
			delete(s.Monsters, id)
		}
	}
	return true
}

// Empty reports whether the session has no participants left.
func (s *Session) Empty() bool { return len(s.Participants) == 0 }

// edgeRow returns the placement row assigned to playerID: 0 for the first
// joiner, BoardSize-1 for the second, -1 for non-participants.
func (s *Session) edgeRow(playerID string) int {
	for i, p := range s.Participants {
		if p.ID == playerID {
			if i == 0 {
				return 0
			}
			return BoardSize - 1
		}
	}
	return -1
}

// PlaceMonster adds a new monster for playerID at pos and resolves any
// conflict the placement caused. The caller has already checked turn
// ownership; placement rules are enforced here.
func (s *Session) PlaceMonster(playerID string, typ MonsterType, pos Position) error {
	if !typ.Valid() {
		return ErrInvalidType
	}
	edge := s.edgeRow(playerID)
	if edge < 0 || pos.Row != edge {
		return ErrInvalidEdge
	}
	if !pos.InBounds() {
		return ErrInvalidMove
	}
	id := fmt.Sprintf("%s_%d", playerID, s.now().UnixNano())
	s.Monsters[id] = &Monster{Type: typ, Position: pos, PlayerID: playerID}
	s.ResolveInteractions()
	return nil
}

// MoveMonster relocates one of playerID's monsters and resolves conflicts.
// A legal move is purely orthogonal of any magnitude within the board, or
// diagonal with both deltas nonzero and at most 2.
func (s *Session) MoveMonster(playerID, monsterID string, pos Position) error {
	m, ok := s.Monsters[monsterID]
	if !ok || m.PlayerID != playerID {
		return ErrInvalidMonster
	}
	if !pos.InBounds() {
		return ErrInvalidMove
	}
	dr := abs(pos.Row - m.Position.Row)
	dc := abs(pos.Col - m.Position.Col)
	orthogonal := (dr == 0 && dc > 0) || (dc == 0 && dr > 0)
	diagonal := dr > 0 && dc > 0 && dr <= 2 && dc <= 2
	if !orthogonal && !diagonal {
		return ErrInvalidMove
	}
	m.Position = pos
	s.ResolveInteractions()
	return nil
}

// EligibleParticipants returns participants still under the elimination
// limit, in insertion order.
func (s *Session) EligibleParticipants() []*Participant {
	out := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if s.Removals[p.ID] < EliminationLimit {
			out = append(out, p)
		}
	}
	return out
}

// Concluded reports whether the game is over (at most one participant is
// still eligible) and, if so, the winner's id. A game with no eligible
// participant concludes with an empty winner.
func (s *Session) Concluded() (winner string, ended bool) {
	eligible := s.EligibleParticipants()
	if len(eligible) > 1 {
		return "", false
	}
	if len(eligible) == 1 {
		winner = eligible[0].ID
	}
	return winner, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
