package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/nullable"

	"github.com/roamly/roamly-api/internal/app/auth"
	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/app/warriors"
)

// ErrorResponse is the uniform error envelope for every non-2xx response.
type ErrorResponse struct {
	Error struct {
		Code      string                            `json:"code"`
		Message   string                            `json:"message"`
		Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
		RequestId nullable.Nullable[string]         `json:"requestId,omitempty"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	var er ErrorResponse
	er.Error.Code = code
	er.Error.Message = message
	if details != nil {
		er.Error.Details = nullable.NewNullableWithValue(details)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		er.Error.RequestId = nullable.NewNullableWithValue(rid)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(er)
}

// writeAppError maps application-layer errors onto the envelope. Anything
// that is not a recognized app error becomes an opaque 500.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		writeError(w, r, authErr.Status, authErr.Code, authErr.Message, authErr.Details)
		return
	}
	var tripsErr *trips.Error
	if errors.As(err, &tripsErr) {
		writeError(w, r, tripsErr.Status, tripsErr.Code, tripsErr.Message, tripsErr.Details)
		return
	}
	var warriorsErr *warriors.Error
	if errors.As(err, &warriorsErr) {
		writeError(w, r, warriorsErr.Status, warriorsErr.Code, warriorsErr.Message, warriorsErr.Details)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
}
