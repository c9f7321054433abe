package warriorrepo

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

// Repository provides access to persisted warriors and their professions.
// Skill links live in skilllinkrepo.
//
// List methods return rows ordered by ID ascending.
type Repository interface {
	Create(ctx context.Context, w domain.Warrior) (domain.Warrior, error)
	GetByID(ctx context.Context, id domain.WarriorID) (domain.Warrior, error)
	List(ctx context.Context) ([]domain.Warrior, error)
	Update(ctx context.Context, w domain.Warrior) error
	Delete(ctx context.Context, id domain.WarriorID) error

	CreateProfession(ctx context.Context, p domain.Profession) (domain.Profession, error)
	GetProfession(ctx context.Context, id domain.ProfessionID) (domain.Profession, error)
	ListProfessions(ctx context.Context) ([]domain.Profession, error)
}
