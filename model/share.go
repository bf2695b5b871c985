package model

import (
	"time"
)

// NoteShare grants a recipient access to a note. The grant is created only
// by the note's owner; CanEdit controls whether the recipient may update
// the note as well as read it.
type NoteShare struct {
	NoteID      string    `bson:"note_id" json:"note_id"`
	RecipientID string    `bson:"recipient_id" json:"recipient_id"`
	CanEdit     bool      `bson:"can_edit" json:"can_edit"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// SharedNote pairs a note with the edit permission the recipient holds on it.
type SharedNote struct {
	CanEdit bool `json:"can_edit"`
	Note    Note `json:"note"`
}
