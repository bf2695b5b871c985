package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/dto"
	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

type NotesHandler struct {
	notes *usecase.NotesService
}

func NewNotesHandler(notes *usecase.NotesService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

func (h *NotesHandler) UpsertNote(c *gin.Context) {
	var req dto.UpsertNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "note_bind")
		utils.BadRequest(c, utils.ValidationMessage(err))
		return
	}

	userID := c.GetString("user_id")
	if err := h.notes.UpsertNote(c.Request.Context(), req.ToNote(userID)); err != nil {
		respondError(c, err)
		return
	}

	utils.TrackNoteOperation("upsert")
	utils.OK(c)
}

func (h *NotesHandler) ListNotes(c *gin.Context) {
	userID := c.GetString("user_id")

	notes, err := h.notes.ListNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNotesListResponse(notes))
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("validation", "note_bind")
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.notes.UpdateNote(c.Request.Context(), noteID, userID, req.ToNoteUpdate()); err != nil {
		respondError(c, err)
		return
	}

	utils.TrackNoteOperation("update")
	utils.OK(c)
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.notes.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.TrackNoteOperation("delete")
	utils.OK(c)
}
