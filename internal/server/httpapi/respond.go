package httpapi

import (
	"encoding/json"
	"net/http"
)

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The payload is built in memory; an encode failure here means a broken
	// response either way, so the error is dropped.
	_ = json.NewEncoder(w).Encode(v)
}
