package domain

import "time"

type Race string

const (
	RaceDirector Race = "director"
	RaceWorker   Race = "worker"
	RaceJunior   Race = "junior"
)

// ValidRace reports whether r is one of the known race values.
func ValidRace(r Race) bool {
	switch r {
	case RaceDirector, RaceWorker, RaceJunior:
		return true
	default:
		return false
	}
}

type Warrior struct {
	ID WarriorID

	Race  Race
	Name  string
	Level int

	// ProfessionID references an optional one-to-many profession; nil means unset.
	ProfessionID *ProfessionID

	OwnerID UserID

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Profession struct {
	ID ProfessionID

	Title       string
	Description string
}

type Skill struct {
	ID SkillID

	Name        string
	Description *string
}

// SkillLink is the warrior<->skill association row. At most one link exists
// per (skill, warrior) pair; Level is a link attribute, not a skill property.
type SkillLink struct {
	SkillID   SkillID
	WarriorID WarriorID

	Level int
}

// WarriorSkill is a skill joined with the level carried by its link.
type WarriorSkill struct {
	Skill
	Level int
}

// WarriorDetails is the read model for single-warrior responses: the warrior
// with its profession and skills resolved.
type WarriorDetails struct {
	Warrior

	Profession *Profession
	Skills     []WarriorSkill
}
