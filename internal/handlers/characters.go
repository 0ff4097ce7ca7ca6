// internal/handlers/characters.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daviddc5/Game2-sub000/internal/catalog"
)

// characterInfo is one row of the public character roster.
type characterInfo struct {
	ID       string `json:"id"`
	DeckSize int    `json:"deckSize"`
}

// CharactersHandler serves GET /duel/characters: the playable roster with
// deck sizes, no card contents.
func (s *DuelServer) CharactersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ids := catalog.Characters()
	out := make([]characterInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, characterInfo{ID: id, DeckSize: catalog.DeckSize(id)})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"characters": out}); err != nil {
		s.Logger.WithError(err).Warn("failed to encode character roster")
	}
}
