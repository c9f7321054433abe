package participantrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/participantrepo"
)

type key struct {
	tripID domain.TripID
	userID domain.UserID
}

// Repo is an in-memory implementation of participantrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex
	m  map[key]domain.Participant
}

func NewRepo() *Repo {
	return &Repo{m: make(map[key]domain.Participant)}
}

func (r *Repo) Add(ctx context.Context, p domain.Participant) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{tripID: p.TripID, userID: p.UserID}
	if _, ok := r.m[k]; ok {
		return participantrepo.ErrAlreadyJoined
	}
	r.m[k] = p
	return nil
}

func (r *Repo) Remove(ctx context.Context, tripID domain.TripID, userID domain.UserID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{tripID: tripID, userID: userID}
	if _, ok := r.m[k]; !ok {
		return participantrepo.ErrNotFound
	}
	delete(r.m, k)
	return nil
}

func (r *Repo) RemoveAllForTrip(ctx context.Context, tripID domain.TripID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.m {
		if k.tripID == tripID {
			delete(r.m, k)
		}
	}
	return nil
}

func (r *Repo) ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Participant, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Participant, 0)
	for k, p := range r.m {
		if k.tripID == tripID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out, nil
}
