package server

import (
	"encoding/json"
	"net/http"
)

// The API contract is message-based: every /api response is 200 OK and
// the outcome lives in the "message" field. Clients switch on the
// message, never on the status code.

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]string{"message": msg})
}
