package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "email taken", err: ErrEmailTaken, wantStatus: http.StatusConflict, wantMsg: "User already exists"},
		{name: "user not found", err: ErrUserNotFound, wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "invalid credentials", err: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMsg: "Password is wrong"},
		{name: "wrapped sentinel", err: fmt.Errorf("register: %w", ErrEmailTaken), wantStatus: http.StatusConflict, wantMsg: "User already exists"},
		{name: "unknown error stays generic", err: errors.New("disk full: /var/db"), wantStatus: http.StatusInternalServerError, wantMsg: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Map(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
