package errors

import "net/http"

// Messages carried in the error envelope, one per status the API emits.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
)

// Message returns the envelope message for status, falling back to the stdlib status text.
func Message(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusInternalServerError:
		return MsgInternalError
	default:
		return http.StatusText(status)
	}
}
