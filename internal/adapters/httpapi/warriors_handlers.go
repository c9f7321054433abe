package httpapi

import (
	"net/http"

	"github.com/roamly/roamly-api/internal/app/warriors"
	"github.com/roamly/roamly-api/internal/domain"
)

func warriorIDFromPath(w http.ResponseWriter, r *http.Request) (domain.WarriorID, bool) {
	id, ok := pathID(w, r, "warriorID", "WARRIOR_NOT_FOUND", "warrior not found")
	return domain.WarriorID(id), ok
}

func skillIDFromPath(w http.ResponseWriter, r *http.Request) (domain.SkillID, bool) {
	id, ok := pathID(w, r, "skillID", "SKILL_NOT_FOUND", "skill not found")
	return domain.SkillID(id), ok
}

func (s *Server) handleCreateWarrior(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	var req createWarriorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := warriors.CreateWarriorInput{
		Race:  domain.Race(req.Race),
		Name:  req.Name,
		Level: req.Level,
	}
	if req.ProfessionID != nil {
		v := domain.ProfessionID(*req.ProfessionID)
		in.ProfessionID = &v
	}

	created, err := s.Warriors.CreateWarrior(r.Context(), domain.UserID(caller), in)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, warriorFromDomain(created))
}

func (s *Server) handleListWarriors(w http.ResponseWriter, r *http.Request) {
	ws, err := s.Warriors.ListWarriors(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]warriorResponse, 0, len(ws))
	for _, wr := range ws {
		out = append(out, warriorFromDomain(wr))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetWarrior(w http.ResponseWriter, r *http.Request) {
	warriorID, ok := warriorIDFromPath(w, r)
	if !ok {
		return
	}
	d, err := s.Warriors.GetWarrior(r.Context(), warriorID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warriorDetailsFromDomain(d))
}

func (s *Server) handleUpdateWarrior(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	warriorID, ok := warriorIDFromPath(w, r)
	if !ok {
		return
	}
	var req updateWarriorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := s.Warriors.UpdateWarrior(r.Context(), domain.UserID(caller), warriorID, warriors.UpdateWarriorInput{
		Race:         optionalRaceFromNullable(req.Race),
		Name:         optionalStringFromNullableWarriors(req.Name),
		Level:        optionalIntFromNullableWarriors(req.Level),
		ProfessionID: optionalProfessionIDFromNullable(req.ProfessionID),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, warriorFromDomain(updated))
}

func (s *Server) handleDeleteWarrior(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	warriorID, ok := warriorIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.Warriors.DeleteWarrior(r.Context(), domain.UserID(caller), warriorID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAttachSkill(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	warriorID, ok := warriorIDFromPath(w, r)
	if !ok {
		return
	}
	skillID, ok := skillIDFromPath(w, r)
	if !ok {
		return
	}

	// The body is optional: an absent or empty body means the default level.
	var req attachSkillRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	if err := s.Warriors.AttachSkill(r.Context(), domain.UserID(caller), warriorID, skillID, req.Level); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDetachSkill(w http.ResponseWriter, r *http.Request) {
	caller, ok := mustIdentity(w, r)
	if !ok {
		return
	}
	warriorID, ok := warriorIDFromPath(w, r)
	if !ok {
		return
	}
	skillID, ok := skillIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.Warriors.DetachSkill(r.Context(), domain.UserID(caller), warriorID, skillID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustIdentity(w, r); !ok {
		return
	}
	var req createSkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := s.Warriors.CreateSkill(r.Context(), warriors.CreateSkillInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, skillFromDomain(created))
}

func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	sks, err := s.Warriors.ListSkills(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]skillResponse, 0, len(sks))
	for _, sk := range sks {
		out = append(out, skillFromDomain(sk))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skillID, ok := skillIDFromPath(w, r)
	if !ok {
		return
	}
	sk, err := s.Warriors.GetSkill(r.Context(), skillID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, skillFromDomain(sk))
}

func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustIdentity(w, r); !ok {
		return
	}
	skillID, ok := skillIDFromPath(w, r)
	if !ok {
		return
	}
	var req updateSkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	updated, err := s.Warriors.UpdateSkill(r.Context(), skillID, warriors.UpdateSkillInput{
		Name:        optionalStringFromNullableWarriors(req.Name),
		Description: optionalStringFromNullableWarriors(req.Description),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, skillFromDomain(updated))
}

func (s *Server) handleDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustIdentity(w, r); !ok {
		return
	}
	skillID, ok := skillIDFromPath(w, r)
	if !ok {
		return
	}
	if err := s.Warriors.DeleteSkill(r.Context(), skillID); err != nil {
		writeAppError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCreateProfession(w http.ResponseWriter, r *http.Request) {
	if _, ok := mustIdentity(w, r); !ok {
		return
	}
	var req createProfessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	created, err := s.Warriors.CreateProfession(r.Context(), warriors.CreateProfessionInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, professionFromDomain(created))
}

func (s *Server) handleListProfessions(w http.ResponseWriter, r *http.Request) {
	ps, err := s.Warriors.ListProfessions(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]professionResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, professionFromDomain(p))
	}
	writeJSON(w, http.StatusOK, out)
}
