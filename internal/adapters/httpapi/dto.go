package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/roamly/roamly-api/internal/app/trips"
	"github.com/roamly/roamly-api/internal/app/warriors"
	"github.com/roamly/roamly-api/internal/domain"
)

// --- users ---

type registerRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	FullName    *string `json:"full_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Preferences *string `json:"preferences,omitempty"`
}

// userResponse never carries the password digest.
type userResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	FullName    *string   `json:"full_name,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Preferences *string   `json:"preferences,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func userFromDomain(u domain.User) userResponse {
	return userResponse{
		ID:          int64(u.ID),
		Username:    u.Username,
		FullName:    u.FullName,
		Bio:         u.Bio,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// --- trips ---

type createTripRequest struct {
	Title        string              `json:"title"`
	Description  *string             `json:"description,omitempty"`
	StartDate    *openapi_types.Date `json:"start_date,omitempty"`
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	DurationDays *int                `json:"duration_days,omitempty"`
}

type updateTripRequest struct {
	Title        nullable.Nullable[string]             `json:"title,omitempty"`
	Description  nullable.Nullable[string]             `json:"description,omitempty"`
	StartDate    nullable.Nullable[openapi_types.Date] `json:"start_date,omitempty"`
	EndDate      nullable.Nullable[openapi_types.Date] `json:"end_date,omitempty"`
	Origin       nullable.Nullable[string]             `json:"origin,omitempty"`
	Destination  nullable.Nullable[string]             `json:"destination,omitempty"`
	DurationDays nullable.Nullable[int]                `json:"duration_days,omitempty"`
}

type tripResponse struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description,omitempty"`
	StartDate    *openapi_types.Date `json:"start_date,omitempty"`
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	Origin       string              `json:"origin"`
	Destination  string              `json:"destination"`
	DurationDays *int                `json:"duration_days,omitempty"`
	OwnerID      int64               `json:"owner_id"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type participantResponse struct {
	TripID   int64     `json:"trip_id"`
	UserID   int64     `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type createItineraryItemRequest struct {
	DayNumber   int     `json:"day_number"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

type itineraryItemResponse struct {
	ID          int64   `json:"id"`
	TripID      int64   `json:"trip_id"`
	DayNumber   int     `json:"day_number"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

type postMessageRequest struct {
	Content string `json:"content"`
}

type messageResponse struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func tripFromDomain(t domain.Trip) tripResponse {
	return tripResponse{
		ID:           int64(t.ID),
		Title:        t.Title,
		Description:  t.Description,
		StartDate:    datePtrFromTime(t.StartDate),
		EndDate:      datePtrFromTime(t.EndDate),
		Origin:       t.Origin,
		Destination:  t.Destination,
		DurationDays: t.DurationDays,
		OwnerID:      int64(t.OwnerID),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func participantFromDomain(p domain.Participant) participantResponse {
	return participantResponse{
		TripID:   int64(p.TripID),
		UserID:   int64(p.UserID),
		JoinedAt: p.JoinedAt,
	}
}

func itineraryItemFromDomain(it domain.ItineraryItem) itineraryItemResponse {
	return itineraryItemResponse{
		ID:          int64(it.ID),
		TripID:      int64(it.TripID),
		DayNumber:   it.DayNumber,
		Location:    it.Location,
		Description: it.Description,
	}
}

func messageFromDomain(m domain.Message) messageResponse {
	return messageResponse{
		ID:        int64(m.ID),
		TripID:    int64(m.TripID),
		SenderID:  int64(m.SenderID),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// --- warriors ---

type createWarriorRequest struct {
	Race         string `json:"race"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	ProfessionID *int64 `json:"profession_id,omitempty"`
}

type updateWarriorRequest struct {
	Race         nullable.Nullable[string] `json:"race,omitempty"`
	Name         nullable.Nullable[string] `json:"name,omitempty"`
	Level        nullable.Nullable[int]    `json:"level,omitempty"`
	ProfessionID nullable.Nullable[int64]  `json:"profession_id,omitempty"`
}

type warriorResponse struct {
	ID           int64     `json:"id"`
	Race         string    `json:"race"`
	Name         string    `json:"name"`
	Level        int       `json:"level"`
	ProfessionID *int64    `json:"profession_id,omitempty"`
	OwnerID      int64     `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type warriorDetailsResponse struct {
	warriorResponse
	Profession *professionResponse    `json:"profession,omitempty"`
	Skills     []warriorSkillResponse `json:"skills"`
}

type warriorSkillResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Level       int     `json:"level"`
}

type attachSkillRequest struct {
	Level *int `json:"level,omitempty"`
}

type createSkillRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type updateSkillRequest struct {
	Name        nullable.Nullable[string] `json:"name,omitempty"`
	Description nullable.Nullable[string] `json:"description,omitempty"`
}

type skillResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type createProfessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type professionResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func warriorFromDomain(w domain.Warrior) warriorResponse {
	out := warriorResponse{
		ID:        int64(w.ID),
		Race:      string(w.Race),
		Name:      w.Name,
		Level:     w.Level,
		OwnerID:   int64(w.OwnerID),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.ProfessionID != nil {
		v := int64(*w.ProfessionID)
		out.ProfessionID = &v
	}
	return out
}

func warriorDetailsFromDomain(d domain.WarriorDetails) warriorDetailsResponse {
	out := warriorDetailsResponse{
		warriorResponse: warriorFromDomain(d.Warrior),
		Skills:          make([]warriorSkillResponse, 0, len(d.Skills)),
	}
	if d.Profession != nil {
		p := professionFromDomain(*d.Profession)
		out.Profession = &p
	}
	for _, s := range d.Skills {
		out.Skills = append(out.Skills, warriorSkillResponse{
			ID:          int64(s.ID),
			Name:        s.Name,
			Description: s.Description,
			Level:       s.Level,
		})
	}
	return out
}

func skillFromDomain(s domain.Skill) skillResponse {
	return skillResponse{ID: int64(s.ID), Name: s.Name, Description: s.Description}
}

func professionFromDomain(p domain.Profession) professionResponse {
	return professionResponse{ID: int64(p.ID), Title: p.Title, Description: p.Description}
}

// --- nullable -> Optional bridges ---

func datePtrFromTime(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: t.UTC()}
}

func optionalStringFromNullableTrips(n nullable.Nullable[string]) trips.Optional[string] {
	if !n.IsSpecified() {
		return trips.Unspecified[string]()
	}
	if n.IsNull() {
		return trips.Null[string]()
	}
	v, err := n.Get()
	if err != nil {
		return trips.Unspecified[string]()
	}
	return trips.Some(v)
}

func optionalIntFromNullableTrips(n nullable.Nullable[int]) trips.Optional[int] {
	if !n.IsSpecified() {
		return trips.Unspecified[int]()
	}
	if n.IsNull() {
		return trips.Null[int]()
	}
	v, err := n.Get()
	if err != nil {
		return trips.Unspecified[int]()
	}
	return trips.Some(v)
}

func optionalTimeFromNullableDateTrips(n nullable.Nullable[openapi_types.Date]) trips.Optional[time.Time] {
	if !n.IsSpecified() {
		return trips.Unspecified[time.Time]()
	}
	if n.IsNull() {
		return trips.Null[time.Time]()
	}
	v, err := n.Get()
	if err != nil {
		return trips.Unspecified[time.Time]()
	}
	return trips.Some(v.Time.UTC())
}

func optionalStringFromNullableWarriors(n nullable.Nullable[string]) warriors.Optional[string] {
	if !n.IsSpecified() {
		return warriors.Unspecified[string]()
	}
	if n.IsNull() {
		return warriors.Null[string]()
	}
	v, err := n.Get()
	if err != nil {
		return warriors.Unspecified[string]()
	}
	return warriors.Some(v)
}

func optionalIntFromNullableWarriors(n nullable.Nullable[int]) warriors.Optional[int] {
	if !n.IsSpecified() {
		return warriors.Unspecified[int]()
	}
	if n.IsNull() {
		return warriors.Null[int]()
	}
	v, err := n.Get()
	if err != nil {
		return warriors.Unspecified[int]()
	}
	return warriors.Some(v)
}

func optionalRaceFromNullable(n nullable.Nullable[string]) warriors.Optional[domain.Race] {
	if !n.IsSpecified() {
		return warriors.Unspecified[domain.Race]()
	}
	if n.IsNull() {
		return warriors.Null[domain.Race]()
	}
	v, err := n.Get()
	if err != nil {
		return warriors.Unspecified[domain.Race]()
	}
	return warriors.Some(domain.Race(v))
}

func optionalProfessionIDFromNullable(n nullable.Nullable[int64]) warriors.Optional[domain.ProfessionID] {
	if !n.IsSpecified() {
		return warriors.Unspecified[domain.ProfessionID]()
	}
	if n.IsNull() {
		return warriors.Null[domain.ProfessionID]()
	}
	v, err := n.Get()
	if err != nil {
		return warriors.Unspecified[domain.ProfessionID]()
	}
	return warriors.Some(domain.ProfessionID(v))
}

func timePtrFromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time.UTC()
	return &t
}
