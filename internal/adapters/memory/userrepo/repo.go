package userrepo

import (
	"context"
	"strings"
	"sync"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/userrepo"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu         sync.RWMutex
	byID       map[domain.UserID]userrepo.User
	byUsername map[string]domain.UserID
	nextID     int64
}

func NewRepo() *Repo {
	return &Repo{
		byID:       make(map[domain.UserID]userrepo.User),
		byUsername: make(map[string]domain.UserID),
	}
}

func (r *Repo) Create(ctx context.Context, u userrepo.User) (userrepo.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Username)
	if _, ok := r.byUsername[key]; ok {
		return userrepo.User{}, userrepo.ErrUsernameTaken
	}
	r.nextID++
	u.ID = domain.UserID(r.nextID)
	r.byID[u.ID] = cloneUser(u)
	r.byUsername[key] = u.ID
	return cloneUser(u), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (userrepo.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return userrepo.User{}, userrepo.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (userrepo.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return userrepo.User{}, userrepo.ErrNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func cloneUser(u userrepo.User) userrepo.User {
	out := u
	out.FullName = cloneStringPtr(u.FullName)
	out.Bio = cloneStringPtr(u.Bio)
	out.Preferences = cloneStringPtr(u.Preferences)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
