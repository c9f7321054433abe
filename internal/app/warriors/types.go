package warriors

import "github.com/roamly/roamly-api/internal/domain"

// Optional is a tri-state field used to distinguish:
// - unspecified (omitted)
// - specified as null
// - specified with a value
type Optional[T any] struct {
	specified bool
	isNull    bool
	value     T
}

func Unspecified[T any]() Optional[T] { return Optional[T]{} }
func Null[T any]() Optional[T]        { return Optional[T]{specified: true, isNull: true} }
func Some[T any](v T) Optional[T]     { return Optional[T]{specified: true, value: v} }

func (o Optional[T]) IsSpecified() bool { return o.specified }
func (o Optional[T]) IsNull() bool      { return o.specified && o.isNull }
func (o Optional[T]) Value() T          { return o.value }

type CreateWarriorInput struct {
	Race  domain.Race
	Name  string
	Level int

	ProfessionID *domain.ProfessionID
}

type UpdateWarriorInput struct {
	// Race, Name and Level cannot be null: every warrior carries them.
	Race  Optional[domain.Race]
	Name  Optional[string]
	Level Optional[int]

	// ProfessionID may be set to null to detach the profession.
	ProfessionID Optional[domain.ProfessionID]
}

type CreateSkillInput struct {
	Name        string
	Description *string
}

type UpdateSkillInput struct {
	// Name cannot be null.
	Name        Optional[string]
	Description Optional[string]
}

type CreateProfessionInput struct {
	Title       string
	Description string
}
