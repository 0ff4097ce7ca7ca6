// internal/game/room.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/daviddc5/Game2-sub000/internal/catalog"
	"github.com/daviddc5/Game2-sub000/internal/models"
)

// PlayerResult is one side's line in a finished match summary.
type PlayerResult struct {
	ID          uuid.UUID    `json:"id"`
	DisplayName string       `json:"displayName"`
	CharacterID string       `json:"characterId"`
	Stats       models.Stats `json:"stats"`
}

// MatchSummary describes a finished match. It is handed to the room's OnEnd
// callback so the owning server can drop the room from the registry and sink
// the result to history.
type MatchSummary struct {
	RoomID     uuid.UUID       `json:"roomId"`
	WinnerSlot int             `json:"winnerSlot"` // 0 or 1
	Reason     string          `json:"reason"`
	Turns      int             `json:"turns"`
	Players    [2]PlayerResult `json:"players"`
	StartedAt  time.Time       `json:"startedAt"`
	EndedAt    time.Time       `json:"endedAt"`
}

// OnRoomEndFunc receives the summary of a finished match exactly once.
type OnRoomEndFunc func(sum MatchSummary)

// commitment records one player's choice for the current turn. A nil
// *commitment in Room.commits means "not yet committed"; a commitment with
// pass=true is the PASS sentinel, distinct from uncommitted.
type commitment struct {
	pass bool
	card *models.Card
}

// Room holds the entire state of one two-player match. All mutation goes
// through methods that hold Mu, so a room only ever has one transition in
// flight; different rooms are fully independent.
type Room struct {
	ID        uuid.UUID
	CreatedAt time.Time

	Players [2]*models.Player
	Rules   Rules

	// Turn counter starts at 1 and increments after each resolution.
	Turn int

	commits  [2]*commitment
	resolved [2]*models.Card // per-turn cache of resolved cards for display

	over        bool
	turnTimer   *time.Timer
	actionIndex int

	Mu sync.Mutex

	// NotifyFn delivers events to a single player. Nil in tests that only
	// inspect state.
	NotifyFn NotifyFunc

	// OnEnd is invoked (with the lock held) when the match reaches a
	// terminal state, by victory or disconnect.
	OnEnd OnRoomEndFunc

	logger *logrus.Logger
}

// NewRoom builds a match from two queue entries: fresh shuffled decks,
// initial hands, starting stats and energy. The room is inert until Start
// is called.
func NewRoom(e1, e2 *models.QueueEntry, rules Rules, logger *logrus.Logger) (*Room, error) {
	if logger == nil {
		logger = logrus.New()
	}
	r := &Room{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Rules:     rules,
		Turn:      1,
		logger:    logger,
	}
	for slot, entry := range []*models.QueueEntry{e1, e2} {
		deck, err := catalog.BuildDeck(entry.CharacterID)
		if err != nil {
			return nil, err
		}
		p := &models.Player{
			ID:          entry.ConnID,
			DisplayName: entry.DisplayName,
			CharacterID: entry.CharacterID,
			Deck:        deck,
			Stats:       startingStats(),
			Energy:      rules.StartingEnergy,
			Connected:   true,
			Conn:        entry.Conn,
		}
		p.Hand = p.Deck.Draw(rules.InitialHandSize)
		r.Players[slot] = p
	}
	return r, nil
}

// startingStats is the opening position for every character.
func startingStats() models.Stats {
	return models.Stats{
		Investigation: 0,
		Morale:        50,
		PublicOpinion: 50,
		Pressure:      0,
	}
}

// Start arms the first turn timer. Called once, after the match_found
// notifications have been sent.
func (r *Room) Start() {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	if r.over {
		return
	}
	r.logAction(uuid.Nil, "match_start", map[string]interface{}{
		"p1": r.Players[0].ID, "p2": r.Players[1].ID,
	})
	r.scheduleTurnTimer()
}

// SlotOf maps a connection id to its player slot (0 or 1), -1 if absent.
// Assumes lock is held.
func (r *Room) slotOf(connID uuid.UUID) int {
	for slot, p := range r.Players {
		if p != nil && p.ID == connID {
			return slot
		}
	}
	return -1
}

// HasPlayer reports whether connID occupies one of the room's slots.
func (r *Room) HasPlayer(connID uuid.UUID) bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	return r.slotOf(connID) >= 0
}

// SubmitAction is the single transition function for player input: a card
// id, or pass=true for the PASS sentinel. Validation failures return a
// client protocol error and leave all state untouched.
func (r *Room) SubmitAction(connID uuid.UUID, cardID string, pass bool) error {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.over {
		return ErrMatchOver
	}
	slot := r.slotOf(connID)
	if slot < 0 {
		return ErrNotInRoom
	}
	p := r.Players[slot]
	var c *models.Card
	if !pass {
		// Hand membership is validated before the double-commit guard.
		if c = p.CardInHand(cardID); c == nil {
			return ErrCardNotInHand
		}
	}
	if r.commits[slot] != nil {
		return ErrAlreadyCommitted
	}

	com := &commitment{pass: pass}
	if !pass {
		if r.Rules.EnforceEnergyCost && p.Energy < c.EnergyCost {
			return ErrNotEnoughEnergy
		}
		p.RemoveFromHand(cardID)
		if r.Rules.EnforceEnergyCost {
			p.Energy -= c.EnergyCost
		}
		com.card = c
	}
	r.commits[slot] = com

	action := "commit_card"
	payload := map[string]interface{}{"turn": r.Turn, "cardId": cardID}
	if pass {
		action = "commit_pass"
		payload = map[string]interface{}{"turn": r.Turn}
	}
	r.logAction(connID, action, payload)

	r.notify(p, Event{Type: EventActionAccepted, RoomID: r.ID.String(), CardID: cardID})

	other := r.Players[1-slot]
	if r.commits[1-slot] == nil {
		r.notify(other, Event{Type: EventOpponentCommitted, RoomID: r.ID.String()})
		return nil
	}

	r.resolveTurn()
	return nil
}

// resolveTurn applies both commitments, checks win conditions, and either
// ends the match or advances to the next turn. Assumes lock is held and
// both commit fields are non-nil.
func (r *Room) resolveTurn() {
	r.stopTurnTimer()

	for slot, com := range r.commits {
		r.resolved[slot] = com.card
	}

	for _, slot := range resolutionOrder(r.commits) {
		c := r.commits[slot].card
		owner := r.Players[slot]
		other := r.Players[1-slot]
		owner.Stats.Apply(c.SelfEffects)
		other.Stats.Apply(c.OpponentEffects)
		if r.Rules.ClampStats {
			owner.Stats.Clamp()
			other.Stats.Clamp()
		}
	}

	r.logAction(uuid.Nil, "turn_resolved", map[string]interface{}{
		"turn": r.Turn,
		"p1":   cardIDOrPass(r.resolved[0]),
		"p2":   cardIDOrPass(r.resolved[1]),
	})

	if winnerSlot, reason, over := EvaluateWin(r.Players[0], r.Players[1]); over {
		r.endMatch(winnerSlot, reason)
		return
	}

	for _, p := range r.Players {
		p.Hand = append(p.Hand, p.Deck.Draw(r.Rules.DrawPerTurn)...)
		p.Energy += r.Rules.EnergyRegen
		if p.Energy > r.Rules.MaxEnergy {
			p.Energy = r.Rules.MaxEnergy
		}
	}
	r.Turn++
	r.commits = [2]*commitment{}

	for slot, p := range r.Players {
		r.notify(p, Event{
			Type:         EventTurnComplete,
			RoomID:       r.ID.String(),
			YourCard:     r.resolved[slot],
			OpponentCard: r.resolved[1-slot],
			State:        r.viewFor(slot),
		})
	}
	r.scheduleTurnTimer()
}

// endMatch marks the room terminal, notifies both sides, and fires OnEnd so
// the registry entry is destroyed immediately. Assumes lock is held.
func (r *Room) endMatch(winnerSlot int, reason string) {
	if r.over {
		return
	}
	r.over = true
	r.stopTurnTimer()

	r.logAction(uuid.Nil, "match_end", map[string]interface{}{
		"winnerSlot": winnerSlot + 1,
		"reason":     reason,
		"turns":      r.Turn,
	})
	r.logger.WithFields(logrus.Fields{
		"room":   r.ID,
		"winner": r.Players[winnerSlot].ID,
		"reason": reason,
		"turns":  r.Turn,
	}).Info("match ended")

	for slot, p := range r.Players {
		winner := "opponent"
		if slot == winnerSlot {
			winner = "you"
		}
		r.notify(p, Event{
			Type:   EventGameOver,
			RoomID: r.ID.String(),
			Winner: winner,
			Reason: reason,
			FinalStats: &FinalStats{
				YourStats:     p.Stats,
				OpponentStats: r.Players[1-slot].Stats,
			},
		})
	}

	if r.OnEnd != nil {
		sum := MatchSummary{
			RoomID:     r.ID,
			WinnerSlot: winnerSlot,
			Reason:     reason,
			Turns:      r.Turn,
			StartedAt:  r.CreatedAt,
			EndedAt:    time.Now(),
		}
		for slot, p := range r.Players {
			sum.Players[slot] = PlayerResult{
				ID:          p.ID,
				DisplayName: p.DisplayName,
				CharacterID: p.CharacterID,
				Stats:       p.Stats,
			}
		}
		r.OnEnd(sum)
	}
}

// HandleDisconnect terminates the match in the remaining player's favor.
// There is no grace period and no reconnection window.
func (r *Room) HandleDisconnect(connID uuid.UUID) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.over {
		return
	}
	slot := r.slotOf(connID)
	if slot < 0 {
		return
	}
	p := r.Players[slot]
	p.Connected = false
	p.Conn = nil
	r.logAction(connID, "player_disconnect", nil)

	other := r.Players[1-slot]
	r.notify(other, Event{Type: EventOpponentDisconnected, RoomID: r.ID.String()})
	r.endMatch(1-slot, ReasonDisconnect)
}

// Snapshot returns the obfuscated view for one connection, or nil if the
// connection is not in this room.
func (r *Room) Snapshot(connID uuid.UUID) *PlayerView {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	slot := r.slotOf(connID)
	if slot < 0 {
		return nil
	}
	return r.viewFor(slot)
}

// viewFor builds one slot's view. Assumes lock is held. The hand slice is
// copied so callers can marshal it after the lock is released.
func (r *Room) viewFor(slot int) *PlayerView {
	p := r.Players[slot]
	opp := r.Players[1-slot]
	hand := make([]*models.Card, len(p.Hand))
	copy(hand, p.Hand)
	return &PlayerView{
		RoomID:           r.ID.String(),
		Turn:             r.Turn,
		Hand:             hand,
		Stats:            p.Stats,
		Energy:           p.Energy,
		DeckSize:         len(p.Deck),
		OpponentStats:    opp.Stats,
		OpponentEnergy:   opp.Energy,
		OpponentDeckSize: len(opp.Deck),
		OpponentHandSize: len(opp.Hand),
	}
}

// scheduleTurnTimer arms the forced-PASS timer for the current turn.
// Assumes lock is held.
func (r *Room) scheduleTurnTimer() {
	if r.Rules.TurnTimerSec <= 0 || r.over {
		return
	}
	r.stopTurnTimer()
	turn := r.Turn
	r.turnTimer = time.AfterFunc(time.Duration(r.Rules.TurnTimerSec)*time.Second, func() {
		r.forcePass(turn)
	})
}

// stopTurnTimer stops any pending timer. Assumes lock is held.
func (r *Room) stopTurnTimer() {
	if r.turnTimer != nil {
		r.turnTimer.Stop()
		r.turnTimer = nil
	}
}

// forcePass commits PASS for every slot that has not acted by the deadline,
// then resolves the turn. A stale timer (the turn already resolved, or the
// match ended) is ignored.
func (r *Room) forcePass(turn int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.over || r.Turn != turn {
		return
	}
	for slot, com := range r.commits {
		if com == nil {
			r.commits[slot] = &commitment{pass: true}
			r.logAction(r.Players[slot].ID, "forced_pass", map[string]interface{}{"turn": r.Turn})
		}
	}
	r.resolveTurn()
}

// notify delivers an event to one player via the injected NotifyFn.
// Assumes lock is held; NotifyFn must not block.
func (r *Room) notify(p *models.Player, ev Event) {
	if r.NotifyFn == nil {
		return
	}
	r.NotifyFn(p, ev)
}

func cardIDOrPass(c *models.Card) string {
	if c == nil {
		return "pass"
	}
	return c.ID
}
