package httperr

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Response is the JSON body sent for every failed request.
type Response struct {
	Message string `json:"message"`
}

// Map translates a domain error into a status code and a fixed client-facing
// message. Unrecognized errors collapse to a generic 500; their detail belongs
// in the server logs, never in the response body.
func Map(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, "Password is wrong"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
