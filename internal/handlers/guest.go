// internal/handlers/guest.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/daviddc5/Game2-sub000/internal/auth"
)

// authCookieName holds the signed guest session token.
const authCookieName = "auth_token"

// EnsureGuest resolves the caller's session identity. A valid auth_token
// cookie is reused so a reconnecting client keeps its id; otherwise a fresh
// guest id is minted and a new cookie set. Must run before the WebSocket
// upgrade, since headers cannot be written afterwards.
func EnsureGuest(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	if c, err := r.Cookie(authCookieName); err == nil && c.Value != "" {
		if sub, err := auth.AuthenticateJWT(c.Value); err == nil {
			if id, err := uuid.Parse(sub); err == nil {
				return id, nil
			}
		}
		// Fall through and mint a new identity on any validation failure.
	}

	id := uuid.New()
	token, err := auth.CreateJWT(id.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create guest token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}
