package models

// CardType categorizes a card for display and client-side hinting.
// The authoritative resolver orders commits by Speed alone; Type and Cancels
// are catalog data passed through to clients.
type CardType string

const (
	TypeCounter CardType = "COUNTER"
	TypeQuick   CardType = "QUICK"
	TypeNormal  CardType = "NORMAL"
	TypePower   CardType = "POWER"
)

// StatKey names one of the four per-player resources a card effect can touch.
type StatKey string

const (
	StatInvestigation StatKey = "investigation"
	StatMorale        StatKey = "morale"
	StatPublicOpinion StatKey = "publicOpinion"
	StatPressure      StatKey = "pressure"
)

// Card is an immutable catalog entry. Instances in decks and hands are shared
// pointers into per-match copies built by the catalog package; the catalog
// itself is never mutated.
type Card struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	EnergyCost      int             `json:"energyCost"`
	Type            CardType        `json:"cardType"`
	Speed           int             `json:"speed"`
	Cancels         bool            `json:"cancels"`
	SelfEffects     map[StatKey]int `json:"selfEffects,omitempty"`
	OpponentEffects map[StatKey]int `json:"opponentEffects,omitempty"`
}
