package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"sreddy.dev/internal/services"
)

// ProfileHandler handles the personal profile endpoint
type ProfileHandler struct {
	responder
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ps *services.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{responder: responder{logger: logger}, profileService: ps}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.profileService.Get())
}

// SkillHandler handles the skill catalogue endpoint
type SkillHandler struct {
	responder
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(ss *services.SkillService, logger *slog.Logger) *SkillHandler {
	return &SkillHandler{responder: responder{logger: logger}, skillService: ss}
}

// ListSkills handles GET /api/skills?highlight=
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	highlight := false
	if v := r.URL.Query().Get("highlight"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid highlight: "+v)
			return
		}
		highlight = b
	}

	if highlight {
		h.respondJSON(w, http.StatusOK, h.skillService.GetHighlighted())
		return
	}
	h.respondJSON(w, http.StatusOK, h.skillService.GetAll())
}
