// internal/game/historian.go
package game

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daviddc5/Game2-sub000/internal/cache"
)

// logAction pushes a state-transition record to the historian queue. The
// push is asynchronous and best-effort: a missing Redis connection or a
// publish failure never affects match state. Assumes lock is held.
func (r *Room) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	r.actionIndex++
	if payload == nil {
		payload = make(map[string]interface{})
	}
	record := cache.MatchActionRecord{
		RoomID:      r.ID,
		ActionIndex: r.actionIndex,
		ActorID:     actorID,
		ActionType:  actionType,
		Payload:     payload,
		Timestamp:   time.Now().UnixMilli(),
	}
	logger := r.logger
	go func(rec cache.MatchActionRecord) {
		if cache.Rdb == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.PublishMatchAction(ctx, rec); err != nil {
			logger.Warnf("historian publish failed for room %s action %d: %v", rec.RoomID, rec.ActionIndex, err)
		}
	}(record)
}
