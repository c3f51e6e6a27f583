package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jastip-id/jastip-be/internal/httperr"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, httperr.Response{Message: message})
}
