package game

import "errors"

// Rule errors are user-facing: the hub forwards their text verbatim to the
// originating connection. None of them mutate state.
var (
	ErrSessionNotFound = errors.New("Not your turn or invalid game")
	ErrSessionFull     = errors.New("Game is full")
	ErrNotYourTurn     = errors.New("Not your turn or invalid game")
	ErrInvalidEdge     = errors.New("Monsters must be placed on your edge (top/bottom row)")
	ErrInvalidType     = errors.New("Invalid monster type")
	ErrInvalidMonster  = errors.New("Invalid monster")
	ErrInvalidMove     = errors.New("Invalid move")
)
