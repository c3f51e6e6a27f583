package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jastip-id/jastip-be/internal/auth"
	"github.com/jastip-id/jastip-be/internal/httperr"
	"github.com/jastip-id/jastip-be/internal/services"
)

// AuthHandler handles registration, login, session checks and logout.
type AuthHandler struct {
	service   services.UserServiceProvider
	tokens    *auth.TokenService
	transport *auth.SessionTransport
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenService, transport *auth.SessionTransport) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens, transport: transport}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImgURL   string `json:"imgUrl"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration. The created user is returned
// without the password hash; accounts start unapproved.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(payload.Name, payload.Email, payload.Password, payload.ImgURL)
	if err != nil {
		status, msg := httperr.Map(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		}
		respondError(w, status, msg)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User registered")
	respondJSON(w, http.StatusOK, user)
}

// Login authenticates a user and attaches a session cookie. Approval status
// is not checked here; the gate enforces it on protected routes.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		status, msg := httperr.Map(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate user")
		} else {
			log.Warn().Str("email", payload.Email).Msg("Failed login attempt")
		}
		respondError(w, status, msg)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue session token")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.transport.Attach(w, token)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged in successfully"})
}

// CheckAuth reports the identity claims of the current session. Runs behind
// the gate, so a missing context entry is a wiring bug, not a client error.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          claims,
	})
}

// Logout clears the session cookie. It is idempotent and requires no auth.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.transport.Clear(w)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
