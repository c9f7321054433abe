package httpapi

import (
	"net/http"

	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/domain"
)

func tripIDFromPath(w http.ResponseWriter, r *http.Request) (domain.TripID, bool) {
	id, ok := pathID(w, r, "tripID", "TRIP_NOT_FOUND", "trip not found")
	return domain.TripID(id), ok
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	var req createTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := s.Trips.Create(r.Context(), domain.UserID(caller), trips.CreateTripInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    timePtrFromDate(req.StartDate),
		EndDate:      timePtrFromDate(req.EndDate),
		Origin:       req.Origin,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripFromDomain(t))
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Trips.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]tripResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, tripFromDomain(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	t, err := s.Trips.Get(r.Context(), tripID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripFromDomain(t))
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	var req updateTripRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := s.Trips.Update(r.Context(), domain.UserID(caller), tripID, trips.UpdateTripInput{
		Title:        optionalStringFromNullableTrips(req.Title),
		Description:  optionalStringFromNullableTrips(req.Description),
		StartDate:    optionalTimeFromNullableDateTrips(req.StartDate),
		EndDate:      optionalTimeFromNullableDateTrips(req.EndDate),
		Origin:       optionalStringFromNullableTrips(req.Origin),
		Destination:  optionalStringFromNullableTrips(req.Destination),
		DurationDays: optionalIntFromNullableTrips(req.DurationDays),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripFromDomain(t))
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.Trips.Delete(r.Context(), domain.UserID(caller), tripID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleJoinTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	p, err := s.Trips.Join(r.Context(), domain.UserID(caller), tripID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, participantFromDomain(p))
}

func (s *Server) handleLeaveTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.Trips.Leave(r.Context(), domain.UserID(caller), tripID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	ps, err := s.Trips.ListParticipants(r.Context(), tripID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]participantResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, participantFromDomain(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddItineraryItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	var req createItineraryItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	it, err := s.Trips.AddItineraryItem(r.Context(), domain.UserID(caller), tripID, trips.CreateItineraryItemInput{
		DayNumber:   req.DayNumber,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, itineraryItemFromDomain(it))
}

func (s *Server) handleListItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	items, err := s.Trips.ListItinerary(r.Context(), tripID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]itineraryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itineraryItemFromDomain(it))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteItineraryItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID", "ITINERARY_ITEM_NOT_FOUND", "itinerary item not found")
	if !ok {
		return
	}
	if err := s.Trips.DeleteItineraryItem(r.Context(), domain.UserID(caller), tripID, domain.ItineraryItemID(itemID)); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	var req postMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := s.Trips.PostMessage(r.Context(), domain.UserID(caller), tripID, req.Content)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageFromDomain(m))
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDFromPath(w, r)
	if !ok {
		return
	}
	ms, err := s.Trips.ListMessages(r.Context(), tripID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]messageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, messageFromDomain(m))
	}
	writeJSON(w, http.StatusOK, out)
}
