// internal/game/errors.go
package game

import "errors"

// Client protocol errors. These are reported to the offending client via an
// "error" event and never mutate state or affect the opponent.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrNotInRoom        = errors.New("not in this game")
	ErrCardNotInHand    = errors.New("card not in your hand")
	ErrAlreadyCommitted = errors.New("already played this turn")
	ErrNotEnoughEnergy  = errors.New("not enough energy")
	ErrMatchOver        = errors.New("match has ended")
	ErrAlreadyQueued    = errors.New("already searching for a match")
	ErrAlreadyInMatch   = errors.New("already in a match")
)
