package skillrepo

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

// Repository provides access to persisted skills.
//
// List returns rows ordered by ID ascending.
type Repository interface {
	Create(ctx context.Context, s domain.Skill) (domain.Skill, error)
	GetByID(ctx context.Context, id domain.SkillID) (domain.Skill, error)
	List(ctx context.Context) ([]domain.Skill, error)
	Update(ctx context.Context, s domain.Skill) error
	Delete(ctx context.Context, id domain.SkillID) error
}
