package skillrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/skillrepo"
)

// Repo is an in-memory implementation of skillrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu     sync.RWMutex
	byID   map[domain.SkillID]domain.Skill
	nextID int64
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.SkillID]domain.Skill)}
}

func (r *Repo) Create(ctx context.Context, s domain.Skill) (domain.Skill, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = domain.SkillID(r.nextID)
	r.byID[s.ID] = cloneSkill(s)
	return cloneSkill(s), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.SkillID) (domain.Skill, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return domain.Skill{}, skillrepo.ErrNotFound
	}
	return cloneSkill(s), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Skill, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Skill, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, cloneSkill(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) Update(ctx context.Context, s domain.Skill) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[s.ID]; !ok {
		return skillrepo.ErrNotFound
	}
	r.byID[s.ID] = cloneSkill(s)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.SkillID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return skillrepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneSkill(s domain.Skill) domain.Skill {
	out := s
	if s.Description != nil {
		v := *s.Description
		out.Description = &v
	}
	return out
}
