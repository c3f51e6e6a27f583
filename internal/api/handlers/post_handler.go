package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jastip-id/jastip-be/internal/auth"
	"github.com/jastip-id/jastip-be/internal/services"
)

// PostHandler handles HTTP requests for listings.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePostPayload defines the structure for post creation requests.
type CreatePostPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quota       string `json:"quota"`
}

// Create stores a new post authored by the current session's user. Runs
// behind the gate.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	var payload CreatePostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.service.CreatePost(claims.UserID, payload.Title, payload.Description, payload.Price, payload.Quota); err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to create post")
		respondError(w, http.StatusBadRequest, "Failed to create post")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Post Success"})
}

// GetAll returns every post. Public, no auth.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve posts")
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}
