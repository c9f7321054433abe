package domain

// UserID is an internal identifier for a user record.
type UserID int64

// TripID is an internal identifier for a trip record.
type TripID int64

// ItineraryItemID is an internal identifier for an itinerary item record.
type ItineraryItemID int64

// MessageID is an internal identifier for a trip message record.
type MessageID int64

// WarriorID is an internal identifier for a warrior record.
type WarriorID int64

// ProfessionID is an internal identifier for a profession record.
type ProfessionID int64

// SkillID is an internal identifier for a skill record.
type SkillID int64
