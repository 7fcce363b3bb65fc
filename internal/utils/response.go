package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error response and of simple
// acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteJSONMessage(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, MessageResponse{Message: message})
}
