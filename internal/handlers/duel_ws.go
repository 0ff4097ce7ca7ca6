// internal/handlers/duel_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/daviddc5/Game2-sub000/internal/catalog"
	"github.com/daviddc5/Game2-sub000/internal/game"
	"github.com/daviddc5/Game2-sub000/internal/middleware"
	"github.com/daviddc5/Game2-sub000/internal/models"
)

// DuelMessage is the single inbound client message shape. Type selects the
// operation; the remaining fields are read per type.
type DuelMessage struct {
	Type string `json:"type"`

	// find_match
	DisplayName string `json:"displayName,omitempty"`
	CharacterID string `json:"characterId,omitempty"`

	// submit_action
	RoomID string `json:"roomId,omitempty"`
	CardID string `json:"cardId,omitempty"`
	Pass   bool   `json:"pass,omitempty"`
}

// DuelWSHandler upgrades GET /duel/ws with the "duel" subprotocol and runs
// the per-connection read loop until the client goes away.
func (s *DuelServer) DuelWSHandler(w http.ResponseWriter, r *http.Request) {
	connID, err := EnsureGuest(w, r)
	if err != nil {
		s.Logger.WithError(err).Error("failed to establish guest session")
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:       []string{"duel"},
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.Logger.WithError(err).Error("websocket accept error")
		return
	}
	if conn.Subprotocol() != "duel" {
		conn.Close(websocket.StatusCode(BadSubprotocolError), "client must speak the duel subprotocol")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	middleware.LogDuelConnect(s.Logger, connID, r.RemoteAddr)

	ctx := r.Context()
	readErr := s.readDuelMessages(ctx, conn, connID)

	s.handleDisconnect(connID)
	middleware.LogDuelDisconnect(s.Logger, connID, r.RemoteAddr, readErr)
}

// readDuelMessages consumes frames until read failure (client close or
// network error) and dispatches each by type.
func (s *DuelServer) readDuelMessages(ctx context.Context, conn *websocket.Conn, connID uuid.UUID) error {
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		var msg DuelMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.Logger.WithField("conn", connID).WithError(err).Warn("invalid duel message")
			sendWsError(ctx, conn, "invalid message")
			continue
		}

		switch msg.Type {
		case "find_match":
			s.handleFindMatch(ctx, conn, connID, msg)
		case "submit_action":
			s.handleSubmitAction(ctx, conn, connID, msg)
		case "ping":
			_ = sendWsMessage(ctx, conn, game.Event{Type: game.EventPong, Message: "pong"})
		default:
			sendWsError(ctx, conn, "unknown message type")
		}
	}
}

// handleFindMatch validates the character choice and puts the connection in
// the queue. Pairing is attempted immediately, so two waiting players match
// without any polling.
func (s *DuelServer) handleFindMatch(ctx context.Context, conn *websocket.Conn, connID uuid.UUID, msg DuelMessage) {
	if !catalog.Exists(msg.CharacterID) {
		sendWsError(ctx, conn, "unknown character")
		return
	}
	if s.Rooms.FindByConn(connID) != nil {
		sendWsError(ctx, conn, game.ErrAlreadyInMatch.Error())
		return
	}

	name := msg.DisplayName
	if name == "" {
		name = "guest"
	}
	entry := &models.QueueEntry{
		ConnID:      connID,
		DisplayName: name,
		CharacterID: msg.CharacterID,
		EnqueuedAt:  time.Now(),
		Conn:        conn,
	}
	if err := s.Queue.Enqueue(entry); err != nil {
		sendWsError(ctx, conn, err.Error())
		return
	}
	_ = sendWsMessage(ctx, conn, game.Event{Type: game.EventQueued})

	s.Queue.TryPair()
}

// handleSubmitAction routes a turn commitment into its room.
func (s *DuelServer) handleSubmitAction(ctx context.Context, conn *websocket.Conn, connID uuid.UUID, msg DuelMessage) {
	roomID, err := uuid.Parse(msg.RoomID)
	if err != nil {
		sendWsError(ctx, conn, "invalid room id")
		return
	}
	room, ok := s.Rooms.Get(roomID)
	if !ok {
		sendWsError(ctx, conn, game.ErrRoomNotFound.Error())
		return
	}
	if err := room.SubmitAction(connID, msg.CardID, msg.Pass); err != nil {
		sendWsError(ctx, conn, err.Error())
	}
}

// handleDisconnect cleans up whatever the connection was doing: a queue slot
// is simply released, a live match is forfeited to the opponent.
func (s *DuelServer) handleDisconnect(connID uuid.UUID) {
	if s.Queue.Remove(connID) {
		return
	}
	if room := s.Rooms.FindByConn(connID); room != nil {
		s.Logger.WithFields(logrus.Fields{
			"conn": connID,
			"room": room.ID,
		}).Info("player disconnected mid-match")
		room.HandleDisconnect(connID)
	}
}
