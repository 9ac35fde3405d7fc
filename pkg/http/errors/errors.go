package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request receives.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the error envelope with an explicit message.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondStatus writes the error envelope with the standard message for status.
func RespondStatus(w http.ResponseWriter, status int) {
	RespondError(w, status, Message(status))
}

// RespondNotFound writes a 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	RespondStatus(w, http.StatusNotFound)
}

// RespondMethodNotAllowed writes a 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondStatus(w, http.StatusMethodNotAllowed)
}
