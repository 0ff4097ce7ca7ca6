// internal/handlers/server.go
package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/daviddc5/Game2-sub000/internal/database"
	"github.com/daviddc5/Game2-sub000/internal/game"
	"github.com/daviddc5/Game2-sub000/internal/models"
)

// DuelServer owns the matchmaking queue and the active room registry, and
// wires pairing, notification delivery, and end-of-match teardown together.
type DuelServer struct {
	Rooms  *game.RoomStore
	Queue  *game.Matchmaker
	Rules  game.Rules
	Logger *logrus.Logger
}

// NewDuelServer builds a server and hooks the matchmaker's PairFn to room
// creation.
func NewDuelServer(rules game.Rules, logger *logrus.Logger) *DuelServer {
	if logger == nil {
		logger = logrus.New()
	}
	s := &DuelServer{
		Rooms:  game.NewRoomStore(),
		Queue:  game.NewMatchmaker(logger),
		Rules:  rules,
		Logger: logger,
	}
	s.Queue.PairFn = s.startMatch
	return s
}

// startMatch turns a matched pair into a live room: build decks and hands,
// register the room, send both match_found notifications, then arm the first
// turn timer. Runs outside the queue lock.
func (s *DuelServer) startMatch(a, b *models.QueueEntry) {
	room, err := game.NewRoom(a, b, s.Rules, s.Logger)
	if err != nil {
		s.Logger.WithError(err).Error("failed to create room for matched pair")
		for _, e := range []*models.QueueEntry{a, b} {
			sendConnError(e.Conn, "failed to start match")
		}
		return
	}
	room.NotifyFn = s.notifyPlayer
	room.OnEnd = func(sum game.MatchSummary) {
		s.Rooms.Delete(sum.RoomID)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := database.RecordMatchResult(ctx, sum); err != nil {
				s.Logger.WithError(err).Warn("failed to record match result")
			}
		}()
	}
	s.Rooms.Add(room)

	s.Logger.WithFields(logrus.Fields{
		"room": room.ID,
		"p1":   a.ConnID,
		"p2":   b.ConnID,
	}).Info("match created")

	// match_found is delivered synchronously: a connection that died after
	// leaving the queue but before the room landed in the registry is caught
	// here by the failed write, so the survivor is not left force-passing a
	// vacant seat.
	for slot, p := range room.Players {
		if p.Conn == nil {
			continue
		}
		opp := room.Players[1-slot]
		ev := game.Event{
			Type:       game.EventMatchFound,
			RoomID:     room.ID.String(),
			PlayerSlot: slot + 1,
			Opponent: &game.OpponentSummary{
				DisplayName: opp.DisplayName,
				CharacterID: opp.CharacterID,
			},
			State: room.Snapshot(p.ID),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := sendWsMessage(ctx, p.Conn, ev)
		cancel()
		if err != nil {
			s.Logger.WithFields(logrus.Fields{
				"room":   room.ID,
				"player": p.ID,
			}).WithError(err).Warn("match_found delivery failed; forfeiting")
			room.HandleDisconnect(p.ID)
			return
		}
	}

	room.Start()
}

// notifyPlayer is the room NotifyFunc. It is called with the room lock held,
// so the socket write happens on its own goroutine with a deadline.
func (s *DuelServer) notifyPlayer(p *models.Player, ev game.Event) {
	conn := p.Conn
	if conn == nil || !p.Connected {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := sendWsMessage(ctx, conn, ev); err != nil {
			s.Logger.WithFields(logrus.Fields{
				"player": p.ID,
				"event":  ev.Type,
			}).WithError(err).Warn("failed to deliver event")
		}
	}()
}

// sendWsMessage marshals v and writes it as a single text frame.
func sendWsMessage(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

// sendWsError sends a protocol error event without closing the socket.
func sendWsError(ctx context.Context, conn *websocket.Conn, message string) {
	_ = sendWsMessage(ctx, conn, game.Event{Type: game.EventError, Message: message})
}

// sendConnError is sendWsError with its own short deadline, for call sites
// that have no request context.
func sendConnError(conn *websocket.Conn, message string) {
	if conn == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	sendWsError(ctx, conn, message)
}
