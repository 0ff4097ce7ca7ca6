package models

import (
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// MaxEnergy is the hard energy ceiling for every player.
const MaxEnergy = 20

// Player is one side of a duel. It is owned exclusively by its Room and only
// mutated by the room's transition function while the room lock is held.
type Player struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	CharacterID string    `json:"characterId"`

	Deck  Deck    `json:"-"`
	Hand  []*Card `json:"-"`
	Stats Stats   `json:"stats"`

	Energy int `json:"energy"`

	Connected bool            `json:"-"`
	Conn      *websocket.Conn `json:"-"`
}

// CardInHand returns the hand card with the given id, or nil.
func (p *Player) CardInHand(cardID string) *Card {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c
		}
	}
	return nil
}

// RemoveFromHand removes the first hand card with the given id and reports
// whether it was present.
func (p *Player) RemoveFromHand(cardID string) bool {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
