package skilllinkrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
)

type key struct {
	skillID   domain.SkillID
	warriorID domain.WarriorID
}

// Repo is an in-memory implementation of skilllinkrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex
	m  map[key]domain.SkillLink
}

func NewRepo() *Repo {
	return &Repo{m: make(map[key]domain.SkillLink)}
}

func (r *Repo) Attach(ctx context.Context, l domain.SkillLink) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{skillID: l.SkillID, warriorID: l.WarriorID}
	if _, ok := r.m[k]; ok {
		return skilllinkrepo.ErrAlreadyLinked
	}
	r.m[k] = l
	return nil
}

func (r *Repo) Detach(ctx context.Context, skillID domain.SkillID, warriorID domain.WarriorID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{skillID: skillID, warriorID: warriorID}
	if _, ok := r.m[k]; !ok {
		return skilllinkrepo.ErrNotFound
	}
	delete(r.m, k)
	return nil
}

func (r *Repo) DetachAllForWarrior(ctx context.Context, warriorID domain.WarriorID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.m {
		if k.warriorID == warriorID {
			delete(r.m, k)
		}
	}
	return nil
}

func (r *Repo) ListByWarrior(ctx context.Context, warriorID domain.WarriorID) ([]domain.SkillLink, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SkillLink, 0)
	for k, l := range r.m {
		if k.warriorID == warriorID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillID < out[j].SkillID })
	return out, nil
}
