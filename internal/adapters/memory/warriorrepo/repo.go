package warriorrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/roamly/roamly-api/internal/domain"
	"github.com/roamly/roamly-api/internal/ports/out/warriorrepo"
)

// Repo is an in-memory implementation of warriorrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu          sync.RWMutex
	warriors    map[domain.WarriorID]domain.Warrior
	professions map[domain.ProfessionID]domain.Profession

	nextWarriorID    int64
	nextProfessionID int64
}

func NewRepo() *Repo {
	return &Repo{
		warriors:    make(map[domain.WarriorID]domain.Warrior),
		professions: make(map[domain.ProfessionID]domain.Profession),
	}
}

func (r *Repo) Create(ctx context.Context, w domain.Warrior) (domain.Warrior, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ProfessionID != nil {
		if _, ok := r.professions[*w.ProfessionID]; !ok {
			return domain.Warrior{}, warriorrepo.ErrProfessionNotFound
		}
	}
	r.nextWarriorID++
	w.ID = domain.WarriorID(r.nextWarriorID)
	r.warriors[w.ID] = cloneWarrior(w)
	return cloneWarrior(w), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.WarriorID) (domain.Warrior, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.warriors[id]
	if !ok {
		return domain.Warrior{}, warriorrepo.ErrNotFound
	}
	return cloneWarrior(w), nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Warrior, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Warrior, 0, len(r.warriors))
	for _, w := range r.warriors {
		out = append(out, cloneWarrior(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) Update(ctx context.Context, w domain.Warrior) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warriors[w.ID]; !ok {
		return warriorrepo.ErrNotFound
	}
	if w.ProfessionID != nil {
		if _, ok := r.professions[*w.ProfessionID]; !ok {
			return warriorrepo.ErrProfessionNotFound
		}
	}
	r.warriors[w.ID] = cloneWarrior(w)
	return nil
}

func (r *Repo) Delete(ctx context.Context, id domain.WarriorID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.warriors[id]; !ok {
		return warriorrepo.ErrNotFound
	}
	delete(r.warriors, id)
	return nil
}

func (r *Repo) CreateProfession(ctx context.Context, p domain.Profession) (domain.Profession, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextProfessionID++
	p.ID = domain.ProfessionID(r.nextProfessionID)
	r.professions[p.ID] = p
	return p, nil
}

func (r *Repo) GetProfession(ctx context.Context, id domain.ProfessionID) (domain.Profession, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.professions[id]
	if !ok {
		return domain.Profession{}, warriorrepo.ErrProfessionNotFound
	}
	return p, nil
}

func (r *Repo) ListProfessions(ctx context.Context) ([]domain.Profession, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Profession, 0, len(r.professions))
	for _, p := range r.professions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func cloneWarrior(w domain.Warrior) domain.Warrior {
	out := w
	if w.ProfessionID != nil {
		v := *w.ProfessionID
		out.ProfessionID = &v
	}
	return out
}
