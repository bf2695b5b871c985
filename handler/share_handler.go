package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/dto"
	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

type ShareHandler struct {
	shares *usecase.ShareService
}

func NewShareHandler(shares *usecase.ShareService) *ShareHandler {
	return &ShareHandler{shares: shares}
}

func (h *ShareHandler) ShareNote(c *gin.Context) {
	var req dto.ShareNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "share_bind")
		utils.BadRequest(c, utils.ValidationMessage(err))
		return
	}

	userID := c.GetString("user_id")
	err := h.shares.ShareNote(c.Request.Context(), userID, req.NoteID, req.Token, req.CanEdit)
	utils.TrackShareOperation(shareOutcome(err))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.OK(c)
}

func (h *ShareHandler) ListShared(c *gin.Context) {
	userID := c.GetString("user_id")

	shared, err := h.shares.ListShared(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToSharedListResponse(shared))
}

func shareOutcome(err error) string {
	switch {
	case err == nil:
		return "granted"
	case errors.Is(err, usecase.ErrTokenNotFound):
		return "token_not_found"
	case errors.Is(err, usecase.ErrSelfShare):
		return "self_share"
	case errors.Is(err, usecase.ErrNoteNotSynced):
		return "not_synced"
	case errors.Is(err, usecase.ErrNotOwner):
		return "not_owner"
	default:
		return "store_error"
	}
}
