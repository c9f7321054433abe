package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/roamly/roamly-api/internal/app/auth"
	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/app/warriors"
)

// Server is the HTTP adapter: it decodes requests, delegates to the
// application services, and encodes responses. No business rules live here.
type Server struct {
	Auth     *auth.Service
	Trips    *trips.Service
	Warriors *warriors.Service

	Log *logrus.Logger
}

func NewServer(authSvc *auth.Service, tripsSvc *trips.Service, warriorsSvc *warriors.Service, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{
		Auth:     authSvc,
		Trips:    tripsSvc,
		Warriors: warriorsSvc,
		Log:      log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON rejects bodies with unknown fields so typos surface instead of
// being silently dropped.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request body", nil)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for endpoints whose body may be absent.
// An empty body leaves dst untouched; Content-Length is not consulted, so
// chunked requests decode like any other.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "malformed request body", nil)
		return false
	}
	return true
}

// pathID parses a numeric URL parameter. A non-numeric value can never name
// an existing resource, so it reports not-found rather than bad-request.
func pathID(w http.ResponseWriter, r *http.Request, param, code, message string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusNotFound, code, message, nil)
		return 0, false
	}
	return id, true
}

func mustIdentity(w http.ResponseWriter, r *http.Request) (int64, bool) {
	u, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", nil)
		return 0, false
	}
	return int64(u.ID), true
}
