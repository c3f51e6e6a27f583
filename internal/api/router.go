package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jastip-id/jastip-be/internal/api/handlers"
	"github.com/jastip-id/jastip-be/internal/auth"
	"github.com/jastip-id/jastip-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(allowedOrigin string, tokens *auth.TokenService, transport *auth.SessionTransport, userService services.UserServiceProvider, postService services.PostServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Credentialed CORS pinned to the one frontend origin; cookies do not
	// cross origins otherwise.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(userService, tokens, transport)
	postHandler := handlers.NewPostHandler(postService)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)
	r.Get("/post", postHandler.GetAll)

	// Protected routes all pass through the gate; there is no other path to
	// these handlers.
	r.Group(func(r chi.Router) {
		r.Use(auth.Gate(tokens, transport))
		r.Get("/check-auth", authHandler.CheckAuth)
		r.Post("/create", postHandler.Create)
	})

	return r
}
