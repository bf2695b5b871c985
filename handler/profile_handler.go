package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/dto"
	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

type ProfileHandler struct {
	profiles *usecase.ProfileService
}

func NewProfileHandler(profiles *usecase.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "profile_bind")
		utils.BadRequest(c, utils.ValidationMessage(err))
		return
	}

	userID := c.GetString("user_id")
	if err := h.profiles.UpsertProfile(c.Request.Context(), req.ToProfile(userID)); err != nil {
		respondError(c, err)
		return
	}

	utils.OK(c)
}
