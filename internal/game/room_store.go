// internal/game/room_store.go
package game

import (
	"sync"

	"github.com/google/uuid"
)

// RoomStore is the session registry: room id -> active match. Inserts come
// from the room factory, deletes from the turn state machine (via OnEnd) or
// the disconnect sweep.
type RoomStore struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]*Room
}

// NewRoomStore returns an empty registry.
func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[uuid.UUID]*Room)}
}

// Add inserts a room.
func (s *RoomStore) Add(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

// Get looks up a room by id.
func (s *RoomStore) Get(id uuid.UUID) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Delete removes a room by id.
func (s *RoomStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

// FindByConn scans active rooms for one containing the given connection,
// used by the disconnect sweep and to reject double-queueing.
func (s *RoomStore) FindByConn(connID uuid.UUID) *Room {
	s.mu.Lock()
	candidates := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		candidates = append(candidates, r)
	}
	s.mu.Unlock()

	for _, r := range candidates {
		if r.HasPlayer(connID) {
			return r
		}
	}
	return nil
}

// Len returns the number of active rooms.
func (s *RoomStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
