package triprepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/triprepo"
)

// Repo is an in-memory implementation of triprepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu       sync.RWMutex
	trips    map[domain.TripID]domain.Trip
	items    map[domain.ItineraryItemID]domain.ItineraryItem
	messages map[domain.MessageID]domain.Message

	nextTripID    int64
	nextItemID    int64
	nextMessageID int64
}

func NewRepo() *Repo {
	return &Repo{
		trips:    make(map[domain.TripID]domain.Trip),
		items:    make(map[domain.ItineraryItemID]domain.ItineraryItem),
		messages: make(map[domain.MessageID]domain.Message),
	}
}

func (r *Repo) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextTripID++
	t.ID = domain.TripID(r.nextTripID)
	r.trips[t.ID] = cloneTrip(t)
	return cloneTrip(t), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, triprepo.ErrNotFound
	}
	return cloneTrip(t), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Trip, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Trip, 0, len(r.trips))
	for _, t := range r.trips {
		out = append(out, cloneTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) Update(ctx context.Context, t domain.Trip) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[t.ID]; !ok {
		return triprepo.ErrNotFound
	}
	r.trips[t.ID] = cloneTrip(t)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.TripID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[id]; !ok {
		return triprepo.ErrNotFound
	}
	delete(r.trips, id)
	for itemID, it := range r.items {
		if it.TripID == id {
			delete(r.items, itemID)
		}
	}
	for msgID, m := range r.messages {
		if m.TripID == id {
			delete(r.messages, msgID)
		}
	}
	return nil
}

func (r *Repo) CreateItineraryItem(ctx context.Context, it domain.ItineraryItem) (domain.ItineraryItem, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[it.TripID]; !ok {
		return domain.ItineraryItem{}, triprepo.ErrNotFound
	}
	r.nextItemID++
	it.ID = domain.ItineraryItemID(r.nextItemID)
	r.items[it.ID] = cloneItem(it)
	return cloneItem(it), nil
}

func (r *Repo) GetItineraryItem(ctx context.Context, id domain.ItineraryItemID) (domain.ItineraryItem, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return domain.ItineraryItem{}, triprepo.ErrItemNotFound
	}
	return cloneItem(it), nil
}

func (r *Repo) ListItinerary(ctx context.Context, tripID domain.TripID) ([]domain.ItineraryItem, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ItineraryItem, 0)
	for _, it := range r.items {
		if it.TripID == tripID {
			out = append(out, cloneItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayNumber == out[j].DayNumber {
			return out[i].ID < out[j].ID
		}
		return out[i].DayNumber < out[j].DayNumber
	})
	return out, nil
}

func (r *Repo) DeleteItineraryItem(ctx context.Context, id domain.ItineraryItemID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return triprepo.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *Repo) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trips[m.TripID]; !ok {
		return domain.Message{}, triprepo.ErrNotFound
	}
	r.nextMessageID++
	m.ID = domain.MessageID(r.nextMessageID)
	r.messages[m.ID] = m
	return m, nil
}

func (r *Repo) ListMessages(ctx context.Context, tripID domain.TripID) ([]domain.Message, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Message, 0)
	for _, m := range r.messages {
		if m.TripID == tripID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func cloneTrip(t domain.Trip) domain.Trip {
	out := t
	out.Description = cloneStringPtr(t.Description)
	out.StartDate = cloneTimePtr(t.StartDate)
	out.EndDate = cloneTimePtr(t.EndDate)
	out.DurationDays = cloneIntPtr(t.DurationDays)
	return out
}

func cloneItem(it domain.ItineraryItem) domain.ItineraryItem {
	out := it
	out.Description = cloneStringPtr(it.Description)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
