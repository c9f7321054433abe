package httpapi

import (
	"net/http"

	"github.com/roamly/roamly-api/internal/app/auth"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := s.Auth.Register(r.Context(), auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		Bio:         req.Bio,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, userFromDomain(u))
}

// handleLogin accepts a form-encoded body (OAuth2 password flow style): the
// one endpoint on the API that is not JSON.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "malformed form body", nil)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required", nil)
		return
	}

	res, err := s.Auth.Login(r.Context(), username, password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: res.AccessToken, TokenType: "bearer"})
}
