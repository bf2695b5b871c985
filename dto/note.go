package dto

import (
	"time"

	"github.com/marcvalle10/notes-api/model"
)

// UpsertNoteRequest carries a client-synced note. The id comes from the
// client so notes created offline keep their identity across syncs.
type UpsertNoteRequest struct {
	ID         string     `json:"id" binding:"required"`
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content"`
	ColorValue int        `json:"color_value"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// ToNote applies the upsert defaults: content "", color_value 0, and
// updated_at now when the client did not send a timestamp.
func (r *UpsertNoteRequest) ToNote(ownerID string) *model.Note {
	updatedAt := time.Now()
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}
	return &model.Note{
		ID:         r.ID,
		OwnerID:    ownerID,
		Title:      r.Title,
		Content:    r.Content,
		ColorValue: r.ColorValue,
		UpdatedAt:  updatedAt,
	}
}

// UpdateNoteRequest has no required fields; absent fields overwrite with
// their zero values.
type UpdateNoteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	ColorValue int    `json:"color_value"`
}

func (r *UpdateNoteRequest) ToNoteUpdate() model.NoteUpdate {
	return model.NoteUpdate{
		Title:      r.Title,
		Content:    r.Content,
		ColorValue: r.ColorValue,
		UpdatedAt:  time.Now(),
	}
}

type NoteResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ColorValue int       `json:"color_value"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type NotesListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// Convert a single note to NoteResponse
func ToNoteResponse(note *model.Note) NoteResponse {
	return NoteResponse{
		ID:         note.ID,
		OwnerID:    note.OwnerID,
		Title:      note.Title,
		Content:    note.Content,
		ColorValue: note.ColorValue,
		UpdatedAt:  note.UpdatedAt,
	}
}

// Convert slice of notes to NotesListResponse
func ToNotesListResponse(notes []*model.Note) NotesListResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return NotesListResponse{Notes: responses}
}
