package skilllinkrepo

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

// Repository maintains warrior<->skill association rows keyed by
// (skill, warrior).
//
// As with participantrepo, the composite primary key is the authoritative
// de-duplication mechanism: implementations translate duplicate-key writes
// into ErrAlreadyLinked so the application layer can apply its idempotence
// policy.
type Repository interface {
	// Attach inserts the link. ErrAlreadyLinked if a link for
	// (skill, warrior) already exists.
	Attach(ctx context.Context, l domain.SkillLink) error

	// Detach deletes the link. ErrNotFound if it does not exist.
	Detach(ctx context.Context, skillID domain.SkillID, warriorID domain.WarriorID) error

	// DetachAllForWarrior deletes every link for a warrior. Detaching links
	// for a warrior that has none is not an error.
	DetachAllForWarrior(ctx context.Context, warriorID domain.WarriorID) error

	// ListByWarrior returns links for a warrior ordered by skill ID.
	ListByWarrior(ctx context.Context, warriorID domain.WarriorID) ([]domain.SkillLink, error)
}
