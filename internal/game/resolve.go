// internal/game/resolve.go
package game

import "github.com/daviddc5/Game2-sub000/internal/models"

// Win reasons reported in game_over events and match history.
const (
	ReasonInvestigation = "investigation"
	ReasonMorale        = "morale"
	ReasonPressure      = "pressure"
	ReasonExhausted     = "exhausted"
	ReasonDisconnect    = "disconnect"
)

// resolutionOrder returns the slot indices whose commits carry a card, in the
// order their effects must apply: higher speed first, equal speeds resolve
// slot 0 (player 1) first. PASS commits contribute nothing and are skipped.
func resolutionOrder(commits [2]*commitment) []int {
	var order []int
	for slot, com := range commits {
		if com != nil && com.card != nil {
			order = append(order, slot)
		}
	}
	if len(order) == 2 && commits[1].card.Speed > commits[0].card.Speed {
		order[0], order[1] = order[1], order[0]
	}
	return order
}

// EvaluateWin checks the terminal conditions in their fixed priority order.
// It returns the winning slot (0 or 1), a reason constant, and whether the
// match is over. The priority order guarantees at most one winner even when
// several thresholds are crossed in the same resolution.
func EvaluateWin(p1, p2 *models.Player) (winnerSlot int, reason string, over bool) {
	switch {
	case p1.Stats.Investigation >= 100:
		return 0, ReasonInvestigation, true
	case p2.Stats.Investigation >= 100:
		return 1, ReasonInvestigation, true
	case p2.Stats.Morale <= 0:
		return 0, ReasonMorale, true
	case p1.Stats.Morale <= 0:
		return 1, ReasonMorale, true
	case p2.Stats.Pressure >= 100:
		return 0, ReasonPressure, true
	case p1.Stats.Pressure >= 100:
		return 1, ReasonPressure, true
	}

	// Out of resources: both sides have nothing left to play or draw.
	if len(p1.Hand) == 0 && len(p1.Deck) == 0 && len(p2.Hand) == 0 && len(p2.Deck) == 0 {
		if p1.Stats.Investigation != p2.Stats.Investigation {
			if p1.Stats.Investigation > p2.Stats.Investigation {
				return 0, ReasonExhausted, true
			}
			return 1, ReasonExhausted, true
		}
		// Investigation tied: higher morale wins; an exact tie on both
		// resolves to player 1 (fixed deterministic rule).
		if p2.Stats.Morale > p1.Stats.Morale {
			return 1, ReasonExhausted, true
		}
		return 0, ReasonExhausted, true
	}

	return 0, "", false
}
