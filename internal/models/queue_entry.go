package models

import (
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// QueueEntry is a waiting player held by the matchmaker until it is paired
// into a room or its connection drops.
type QueueEntry struct {
	ConnID      uuid.UUID
	DisplayName string
	CharacterID string
	EnqueuedAt  time.Time

	Conn *websocket.Conn
}
