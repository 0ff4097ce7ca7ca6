// internal/game/room_store_test.go
package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStoreLifecycle(t *testing.T) {
	s := NewRoomStore()
	r, _ := setupTestRoom(t, DefaultRules())
	assert.Zero(t, s.Len())

	s.Add(r)
	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(r.ID)
	require.True(t, ok)
	assert.Same(t, r, got)

	assert.Same(t, r, s.FindByConn(r.Players[0].ID))
	assert.Same(t, r, s.FindByConn(r.Players[1].ID))
	assert.Nil(t, s.FindByConn(uuid.New()))

	s.Delete(r.ID)
	_, ok = s.Get(r.ID)
	assert.False(t, ok)
	assert.Nil(t, s.FindByConn(r.Players[0].ID))
	assert.Zero(t, s.Len())

	_, ok = s.Get(uuid.New())
	assert.False(t, ok)
}
