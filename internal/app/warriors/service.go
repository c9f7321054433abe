package warriors

import (
	"context"
	"errors"
	"strings"

	"github.com/roamly/roamly-api/internal/domain"
	clockport "github.com/roamly/roamly-api/internal/ports/out/clock"
	"github.com/roamly/roamly-api/internal/ports/out/skilllinkrepo"
	"github.com/roamly/roamly-api/internal/ports/out/skillrepo"
	"github.com/roamly/roamly-api/internal/ports/out/warriorrepo"
)

// defaultSkillLevel is used when an attach request omits the level.
const defaultSkillLevel = 1

type Service struct {
	warriors warriorrepo.Repository
	skills   skillrepo.Repository
	links    skilllinkrepo.Repository
	clk      clockport.Clock
}

func NewService(warriors warriorrepo.Repository, skills skillrepo.Repository, links skilllinkrepo.Repository, clk clockport.Clock) *Service {
	return &Service{warriors: warriors, skills: skills, links: links, clk: clk}
}

func (s *Service) CreateWarrior(ctx context.Context, caller domain.UserID, in CreateWarriorInput) (domain.Warrior, error) {
	if !domain.ValidRace(in.Race) {
		return domain.Warrior{}, validationError("race", "must be one of director, worker, junior")
	}
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.Warrior{}, validationError("name", "must be non-empty")
	}
	if in.Level < 1 {
		return domain.Warrior{}, validationError("level", "must be positive")
	}

	now := s.clk.Now().UTC()
	w := domain.Warrior{
		Race:         in.Race,
		Name:         name,
		Level:        in.Level,
		ProfessionID: in.ProfessionID,
		OwnerID:      caller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.warriors.Create(ctx, w)
	if err != nil {
		if errors.Is(err, warriorrepo.ErrProfessionNotFound) {
			return domain.Warrior{}, professionNotFound()
		}
		return domain.Warrior{}, err
	}
	return created, nil
}

// GetWarrior returns the warrior with its profession and skills resolved.
func (s *Service) GetWarrior(ctx context.Context, id domain.WarriorID) (domain.WarriorDetails, error) {
	w, err := s.getWarrior(ctx, id)
	if err != nil {
		return domain.WarriorDetails{}, err
	}

	d := domain.WarriorDetails{Warrior: w}
	if w.ProfessionID != nil {
		p, err := s.warriors.GetProfession(ctx, *w.ProfessionID)
		if err != nil && !errors.Is(err, warriorrepo.ErrProfessionNotFound) {
			return domain.WarriorDetails{}, err
		}
		if err == nil {
			d.Profession = &p
		}
	}

	links, err := s.links.ListByWarrior(ctx, id)
	if err != nil {
		return domain.WarriorDetails{}, err
	}
	d.Skills = make([]domain.WarriorSkill, 0, len(links))
	for _, l := range links {
		sk, err := s.skills.GetByID(ctx, l.SkillID)
		if err != nil {
			if errors.Is(err, skillrepo.ErrNotFound) {
				continue
			}
			return domain.WarriorDetails{}, err
		}
		d.Skills = append(d.Skills, domain.WarriorSkill{Skill: sk, Level: l.Level})
	}
	return d, nil
}

func (s *Service) ListWarriors(ctx context.Context) ([]domain.Warrior, error) {
	return s.warriors.List(ctx)
}

func (s *Service) UpdateWarrior(ctx context.Context, caller domain.UserID, id domain.WarriorID, in UpdateWarriorInput) (domain.Warrior, error) {
	w, err := s.getWarrior(ctx, id)
	if err != nil {
		return domain.Warrior{}, err
	}
	if err := authorizeOwner(w.OwnerID, caller); err != nil {
		return domain.Warrior{}, err
	}

	if in.Race.IsSpecified() {
		if in.Race.IsNull() {
			return domain.Warrior{}, validationError("race", "cannot be null")
		}
		if !domain.ValidRace(in.Race.Value()) {
			return domain.Warrior{}, validationError("race", "must be one of director, worker, junior")
		}
		w.Race = in.Race.Value()
	}
	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return domain.Warrior{}, validationError("name", "cannot be null")
		}
		name := domain.NormalizeHumanName(in.Name.Value())
		if name == "" {
			return domain.Warrior{}, validationError("name", "must be non-empty")
		}
		w.Name = name
	}
	if in.Level.IsSpecified() {
		if in.Level.IsNull() {
			return domain.Warrior{}, validationError("level", "cannot be null")
		}
		if in.Level.Value() < 1 {
			return domain.Warrior{}, validationError("level", "must be positive")
		}
		w.Level = in.Level.Value()
	}
	if in.ProfessionID.IsSpecified() {
		if in.ProfessionID.IsNull() {
			w.ProfessionID = nil
		} else {
			v := in.ProfessionID.Value()
			w.ProfessionID = &v
		}
	}

	w.UpdatedAt = s.clk.Now().UTC()
	if err := s.warriors.Update(ctx, w); err != nil {
		switch {
		case errors.Is(err, warriorrepo.ErrNotFound):
			return domain.Warrior{}, warriorNotFound()
		case errors.Is(err, warriorrepo.ErrProfessionNotFound):
			return domain.Warrior{}, professionNotFound()
		}
		return domain.Warrior{}, err
	}
	return w, nil
}

func (s *Service) DeleteWarrior(ctx context.Context, caller domain.UserID, id domain.WarriorID) error {
	w, err := s.getWarrior(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(w.OwnerID, caller); err != nil {
		return err
	}
	if err := s.warriors.Delete(ctx, id); err != nil {
		if errors.Is(err, warriorrepo.ErrNotFound) {
			return warriorNotFound()
		}
		return err
	}
	// Skill links live in their own store and do not cascade there.
	return s.links.DetachAllForWarrior(ctx, id)
}

// AttachSkill links a skill to a warrior. A second attach for the same pair
// is a no-op: the store's duplicate-key signal is translated into success so
// exactly one link row ever exists.
func (s *Service) AttachSkill(ctx context.Context, caller domain.UserID, warriorID domain.WarriorID, skillID domain.SkillID, level *int) error {
	w, err := s.getWarrior(ctx, warriorID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(w.OwnerID, caller); err != nil {
		return err
	}
	if _, err := s.skills.GetByID(ctx, skillID); err != nil {
		if errors.Is(err, skillrepo.ErrNotFound) {
			return skillNotFound()
		}
		return err
	}

	lvl := defaultSkillLevel
	if level != nil {
		if *level < 1 {
			return validationError("level", "must be positive")
		}
		lvl = *level
	}

	err = s.links.Attach(ctx, domain.SkillLink{SkillID: skillID, WarriorID: warriorID, Level: lvl})
	if err != nil && !errors.Is(err, skilllinkrepo.ErrAlreadyLinked) {
		return err
	}
	return nil
}

func (s *Service) DetachSkill(ctx context.Context, caller domain.UserID, warriorID domain.WarriorID, skillID domain.SkillID) error {
	w, err := s.getWarrior(ctx, warriorID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(w.OwnerID, caller); err != nil {
		return err
	}
	if err := s.links.Detach(ctx, skillID, warriorID); err != nil {
		if errors.Is(err, skilllinkrepo.ErrNotFound) {
			return &Error{Status: 404, Code: "SKILL_LINK_NOT_FOUND", Message: "skill is not linked to this warrior"}
		}
		return err
	}
	return nil
}

func (s *Service) CreateSkill(ctx context.Context, in CreateSkillInput) (domain.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Skill{}, validationError("name", "must be non-empty")
	}
	return s.skills.Create(ctx, domain.Skill{Name: name, Description: in.Description})
}

func (s *Service) GetSkill(ctx context.Context, id domain.SkillID) (domain.Skill, error) {
	sk, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, skillrepo.ErrNotFound) {
			return domain.Skill{}, skillNotFound()
		}
		return domain.Skill{}, err
	}
	return sk, nil
}

func (s *Service) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.skills.List(ctx)
}

func (s *Service) UpdateSkill(ctx context.Context, id domain.SkillID, in UpdateSkillInput) (domain.Skill, error) {
	sk, err := s.GetSkill(ctx, id)
	if err != nil {
		return domain.Skill{}, err
	}

	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return domain.Skill{}, validationError("name", "cannot be null")
		}
		name := strings.TrimSpace(in.Name.Value())
		if name == "" {
			return domain.Skill{}, validationError("name", "must be non-empty")
		}
		sk.Name = name
	}
	if in.Description.IsSpecified() {
		if in.Description.IsNull() {
			sk.Description = nil
		} else {
			v := in.Description.Value()
			sk.Description = &v
		}
	}

	if err := s.skills.Update(ctx, sk); err != nil {
		if errors.Is(err, skillrepo.ErrNotFound) {
			return domain.Skill{}, skillNotFound()
		}
		return domain.Skill{}, err
	}
	return sk, nil
}

func (s *Service) DeleteSkill(ctx context.Context, id domain.SkillID) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, skillrepo.ErrNotFound) {
			return skillNotFound()
		}
		return err
	}
	return nil
}

func (s *Service) CreateProfession(ctx context.Context, in CreateProfessionInput) (domain.Profession, error) {
	title := domain.NormalizeHumanName(in.Title)
	if title == "" {
		return domain.Profession{}, validationError("title", "must be non-empty")
	}
	return s.warriors.CreateProfession(ctx, domain.Profession{Title: title, Description: in.Description})
}

func (s *Service) ListProfessions(ctx context.Context) ([]domain.Profession, error) {
	return s.warriors.ListProfessions(ctx)
}

// --- helpers ---

func (s *Service) getWarrior(ctx context.Context, id domain.WarriorID) (domain.Warrior, error) {
	w, err := s.warriors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, warriorrepo.ErrNotFound) {
			return domain.Warrior{}, warriorNotFound()
		}
		return domain.Warrior{}, err
	}
	return w, nil
}

func authorizeOwner(owner, caller domain.UserID) error {
	if owner != caller {
		return &Error{Status: 403, Code: "ACCESS_DENIED", Message: "not enough permissions"}
	}
	return nil
}

func warriorNotFound() *Error {
	return &Error{Status: 404, Code: "WARRIOR_NOT_FOUND", Message: "warrior not found"}
}

func skillNotFound() *Error {
	return &Error{Status: 404, Code: "SKILL_NOT_FOUND", Message: "skill not found"}
}

func professionNotFound() *Error {
	return &Error{Status: 404, Code: "PROFESSION_NOT_FOUND", Message: "profession not found"}
}

func validationError(field, msg string) *Error {
	return &Error{Status: 400, Code: "VALIDATION_ERROR", Message: "invalid " + field, Details: map[string]any{field: msg}}
}
