package auth

import "net/http"

const cookieName = "token"

// sessionCookie is the single cookie shape used for both attach and clear, so
// the security flags cannot diverge between the two paths.
func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// SessionTransport carries the session token between client and server as a
// cookie. Secure is configurable so local development over plain HTTP works.
type SessionTransport struct {
	secure bool
}

// NewSessionTransport creates a SessionTransport.
func NewSessionTransport(secure bool) *SessionTransport {
	return &SessionTransport{secure: secure}
}

// Attach sets the token cookie with a max-age matching TokenTTL.
func (t *SessionTransport) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, sessionCookie(token, int(TokenTTL.Seconds()), t.secure))
}

// Extract reads the token from the incoming request. An empty string means no
// token was sent.
func (t *SessionTransport) Extract(r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Clear expires the cookie, using the same flags it was set with.
func (t *SessionTransport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie("", -1, t.secure))
}
