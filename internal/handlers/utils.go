package handlers

import "net/http"

// PingHandler is the liveness check at the root path.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
