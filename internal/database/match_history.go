// internal/database/match_history.go
package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/daviddc5/Game2-sub000/internal/game"
)

// RecordMatchResult writes one finished match into match_history. Best
// effort: callers run it on a goroutine and only log failures, so a dead
// database never blocks or fails live play.
func RecordMatchResult(ctx context.Context, summary game.MatchSummary) error {
	if DB == nil {
		return nil
	}

	players, err := json.Marshal(summary.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal match players: %w", err)
	}

	_, err = DB.Exec(ctx, `
		INSERT INTO match_history (room_id, winner_slot, reason, turns, players, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (room_id) DO NOTHING
	`, summary.RoomID, summary.WinnerSlot, summary.Reason, summary.Turns, players, summary.StartedAt, summary.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match_history row: %w", err)
	}
	return nil
}
