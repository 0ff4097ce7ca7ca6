// internal/game/events.go
package game

import "github.com/daviddc5/Game2-sub000/internal/models"

// EventType is an enum-like type for the server-to-client notifications.
type EventType string

const (
	EventQueued               EventType = "queued"
	EventMatchFound           EventType = "match_found"
	EventActionAccepted       EventType = "action_accepted"
	EventOpponentCommitted    EventType = "opponent_committed"
	EventTurnComplete         EventType = "turn_complete"
	EventGameOver             EventType = "game_over"
	EventOpponentDisconnected EventType = "opponent_disconnected"
	EventError                EventType = "error"
	EventPong                 EventType = "pong"
)

// OpponentSummary is the public shape of the other player sent at pairing
// time. It deliberately contains no hidden information.
type OpponentSummary struct {
	DisplayName string `json:"displayName"`
	CharacterID string `json:"characterId"`
}

// PlayerView is one player's obfuscated view of a room: the full own hand,
// but only sizes for the opponent's deck and hand.
type PlayerView struct {
	RoomID           string         `json:"roomId"`
	Turn             int            `json:"turnNumber"`
	Hand             []*models.Card `json:"hand"`
	Stats            models.Stats   `json:"stats"`
	Energy           int            `json:"energy"`
	DeckSize         int            `json:"deckSize"`
	OpponentStats    models.Stats   `json:"opponentStats"`
	OpponentEnergy   int            `json:"opponentEnergy"`
	OpponentDeckSize int            `json:"opponentDeckSize"`
	OpponentHandSize int            `json:"opponentHandSize"`
}

// FinalStats accompanies a game_over event.
type FinalStats struct {
	YourStats     models.Stats `json:"yourStats"`
	OpponentStats models.Stats `json:"opponentStats"`
}

// Event is the single outbound message shape. Optional fields are pointers
// or omitempty values so every event type serializes to its minimal payload.
type Event struct {
	Type EventType `json:"type"`

	RoomID     string           `json:"roomId,omitempty"`
	PlayerSlot int              `json:"playerSlot,omitempty"` // 1 or 2
	Opponent   *OpponentSummary `json:"opponent,omitempty"`

	CardID string `json:"cardId,omitempty"`

	// YourCard and OpponentCard reveal the resolved commits after a turn;
	// a nil card means that side passed.
	YourCard     *models.Card `json:"yourCard,omitempty"`
	OpponentCard *models.Card `json:"opponentCard,omitempty"`

	State *PlayerView `json:"state,omitempty"`

	Winner     string      `json:"winner,omitempty"` // "you" or "opponent"
	Reason     string      `json:"reason,omitempty"`
	FinalStats *FinalStats `json:"finalStats,omitempty"`

	Message string `json:"message,omitempty"`
}

// NotifyFunc delivers an event to a single player. It is invoked while the
// room lock is held, so implementations must not block; actual socket writes
// happen on a separate goroutine.
type NotifyFunc func(p *models.Player, ev Event)
