// internal/game/rules.go
package game

import (
	"os"
	"strconv"

	"github.com/daviddc5/Game2-sub000/internal/models"
)

// Rules holds the tunable match parameters. The defaults implement the
// recommended hardened behavior (energy costs enforced, stats clamped,
// idle turns forced to PASS); the toggles exist so the permissive legacy
// behavior remains expressible.
type Rules struct {
	TurnTimerSec      int  `json:"turnTimerSec"`      // seconds before uncommitted players are forced to PASS; 0 disables
	InitialHandSize   int  `json:"initialHandSize"`   // cards dealt at match start
	DrawPerTurn       int  `json:"drawPerTurn"`       // cards drawn by each player after a resolution
	StartingEnergy    int  `json:"startingEnergy"`    // energy at match start
	EnergyRegen       int  `json:"energyRegen"`       // energy gained after each resolution
	MaxEnergy         int  `json:"maxEnergy"`         // energy ceiling
	EnforceEnergyCost bool `json:"enforceEnergyCost"` // validate and deduct energyCost at commit time
	ClampStats        bool `json:"clampStats"`        // clamp stats to [0,100] after each card application
}

// DefaultRules returns the standard multiplayer ruleset.
func DefaultRules() Rules {
	return Rules{
		TurnTimerSec:      60,
		InitialHandSize:   5,
		DrawPerTurn:       2,
		StartingEnergy:    10,
		EnergyRegen:       5,
		MaxEnergy:         models.MaxEnergy,
		EnforceEnergyCost: true,
		ClampStats:        true,
	}
}

// RulesFromEnv applies environment overrides on top of the defaults.
// Recognized variables: TURN_TIMER_SEC, INITIAL_HAND_SIZE, DRAW_PER_TURN.
func RulesFromEnv() Rules {
	r := DefaultRules()
	r.TurnTimerSec = envInt("TURN_TIMER_SEC", r.TurnTimerSec)
	r.InitialHandSize = envInt("INITIAL_HAND_SIZE", r.InitialHandSize)
	r.DrawPerTurn = envInt("DRAW_PER_TURN", r.DrawPerTurn)
	return r
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}
