package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
)

// NewRouter wires routes and middleware around a Server. Read-only resource
// endpoints are public; everything that mutates requires a bearer token.
func NewRouter(s *Server, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Public surface.
	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)

	r.Get("/trips", s.handleListTrips)
	r.Get("/trips/{tripID}", s.handleGetTrip)
	r.Get("/trips/{tripID}/participants", s.handleListParticipants)
	r.Get("/trips/{tripID}/itinerary", s.handleListItinerary)
	r.Get("/trips/{tripID}/messages", s.handleListMessages)

	r.Get("/warriors", s.handleListWarriors)
	r.Get("/warriors/{warriorID}", s.handleGetWarrior)
	r.Get("/skills", s.handleListSkills)
	r.Get("/skills/{skillID}", s.handleGetSkill)
	r.Get("/professions", s.handleListProfessions)

	// Authenticated surface.
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/trips", s.handleCreateTrip)
		r.Patch("/trips/{tripID}", s.handleUpdateTrip)
		r.Delete("/trips/{tripID}", s.handleDeleteTrip)
		r.Post("/trips/{tripID}/join", s.handleJoinTrip)
		r.Delete("/trips/{tripID}/leave", s.handleLeaveTrip)
		r.Post("/trips/{tripID}/itinerary", s.handleAddItineraryItem)
		r.Delete("/trips/{tripID}/itinerary/{itemID}", s.handleDeleteItineraryItem)
		r.Post("/trips/{tripID}/messages", s.handlePostMessage)

		r.Post("/warriors", s.handleCreateWarrior)
		r.Patch("/warriors/{warriorID}", s.handleUpdateWarrior)
		r.Delete("/warriors/{warriorID}", s.handleDeleteWarrior)
		r.Post("/warriors/{warriorID}/skills/{skillID}", s.handleAttachSkill)
		r.Delete("/warriors/{warriorID}/skills/{skillID}", s.handleDetachSkill)

		r.Post("/skills", s.handleCreateSkill)
		r.Patch("/skills/{skillID}", s.handleUpdateSkill)
		r.Delete("/skills/{skillID}", s.handleDeleteSkill)

		r.Post("/professions", s.handleCreateProfession)
	})

	if len(corsOrigins) == 0 {
		return r
	}
	return handlers.CORS(
		handlers.AllowedOrigins(corsOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(r)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Log.WithFields(map[string]any{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    ww.Status(),
			"bytes":     ww.BytesWritten(),
			"duration":  time.Since(start).String(),
			"requestId": chimiddleware.GetReqID(r.Context()),
		}).Info("request")
	})
}
