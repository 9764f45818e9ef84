package game

import "fmt"

// BoardSize is the side length of the square board. Positions are
// zero-indexed, so valid rows and columns are [0, BoardSize-1].
const BoardSize = 10

// EliminationLimit is the number of monsters a participant may lose to
// conflict resolution before they are out of the game.
const EliminationLimit = 10

// MonsterType is one of the three playable monster kinds.
type MonsterType string

const (
	Vampire  MonsterType = "vampire"
	Werewolf MonsterType = "werewolf"
	Ghost    MonsterType = "ghost"
)

// Valid reports whether t is one of the three playable kinds.
func (t MonsterType) Valid() bool {
	switch t {
	case Vampire, Werewolf, Ghost:
		return true
	}
	return false
}

// Beats reports whether t defeats other under the cyclic dominance rule:
// vampire beats werewolf, werewolf beats ghost, ghost beats vampire.
func (t MonsterType) Beats(other MonsterType) bool {
	switch {
	case t == Vampire && other == Werewolf:
		return true
	case t == Werewolf && other == Ghost:
		return true
	case t == Ghost && other == Vampire:
		return true
	}
	return false
}

// Position is a cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Monster is a placed game piece. Position mutates in place on moves; the
// resolver removes monsters from the session map when they lose a conflict.
type Monster struct {
	Type     MonsterType `json:"type"`
	Position Position    `json:"position"`
	PlayerID string      `json:"playerId"`
}

// Participant occupies one of the two slots in a session. At most one
// participant per session is active at any time.
type Participant struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}
