package dto

import (
	"github.com/marcvalle10/notes-api/model"
)

// ShareNoteRequest grants another user access to a note. The recipient is
// addressed by their share token, never by user id.
type ShareNoteRequest struct {
	NoteID  string `json:"note_id" binding:"required"`
	Token   string `json:"token" binding:"required"`
	CanEdit bool   `json:"can_edit"`
}

type SharedNoteResponse struct {
	CanEdit bool         `json:"can_edit"`
	Note    NoteResponse `json:"note"`
}

type SharedListResponse struct {
	Items []SharedNoteResponse `json:"items"`
}

// Convert shared notes to SharedListResponse
func ToSharedListResponse(shared []*model.SharedNote) SharedListResponse {
	items := make([]SharedNoteResponse, len(shared))
	for i, s := range shared {
		items[i] = SharedNoteResponse{
			CanEdit: s.CanEdit,
			Note:    ToNoteResponse(&s.Note),
		}
	}
	return SharedListResponse{Items: items}
}
