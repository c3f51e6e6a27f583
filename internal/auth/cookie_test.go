package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransport_Attach(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewSessionTransport(true).Attach(rec, "tok-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "tok-value", c.Value)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestSessionTransport_Extract(t *testing.T) {
	t.Parallel()

	transport := NewSessionTransport(true)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, transport.Extract(r))

	r.AddCookie(&http.Cookie{Name: "token", Value: "tok-value"})
	assert.Equal(t, "tok-value", transport.Extract(r))
}

func TestSessionTransport_Clear_MatchesAttachFlags(t *testing.T) {
	t.Parallel()

	transport := NewSessionTransport(true)

	set := httptest.NewRecorder()
	transport.Attach(set, "tok-value")
	cleared := httptest.NewRecorder()
	transport.Clear(cleared)

	setCookie := set.Result().Cookies()[0]
	clearCookie := cleared.Result().Cookies()[0]

	assert.Equal(t, setCookie.Name, clearCookie.Name)
	assert.Equal(t, setCookie.Path, clearCookie.Path)
	assert.Equal(t, setCookie.HttpOnly, clearCookie.HttpOnly)
	assert.Equal(t, setCookie.Secure, clearCookie.Secure)
	assert.Equal(t, setCookie.SameSite, clearCookie.SameSite)

	assert.Empty(t, clearCookie.Value)
	assert.Negative(t, clearCookie.MaxAge)
}
