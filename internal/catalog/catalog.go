// internal/catalog/catalog.go
package catalog

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/daviddc5/Game2-sub000/internal/models"
)

// BuildDeck returns a fresh, uniformly shuffled copy of the character's
// catalog. Every card is deep-copied so a match can never alias catalog data
// or another player's deck.
func BuildDeck(characterID string) (models.Deck, error) {
	cards, ok := characters[characterID]
	if !ok {
		return nil, fmt.Errorf("unknown character %q", characterID)
	}

	deck := make(models.Deck, len(cards))
	for i, c := range cards {
		deck[i] = cloneCard(c)
	}

	// Fisher-Yates via rand.Shuffle.
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck, nil
}

// Characters returns the selectable character ids in stable order.
func Characters() []string {
	ids := make([]string, 0, len(characters))
	for id := range characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists reports whether a character id is in the catalog.
func Exists(characterID string) bool {
	_, ok := characters[characterID]
	return ok
}

// DeckSize returns the catalog size for a character, 0 if unknown.
func DeckSize(characterID string) int {
	return len(characters[characterID])
}

func cloneCard(c *models.Card) *models.Card {
	dup := *c
	dup.SelfEffects = cloneEffects(c.SelfEffects)
	dup.OpponentEffects = cloneEffects(c.OpponentEffects)
	return &dup
}

func cloneEffects(m map[models.StatKey]int) map[models.StatKey]int {
	if m == nil {
		return nil
	}
	out := make(map[models.StatKey]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
