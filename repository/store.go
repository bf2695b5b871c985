package repository

import (
	"context"
	"errors"

	"github.com/marcvalle10/notes-api/model"
)

// ErrNotFound is returned when a lookup matches no document. Callers decide
// what the absence means; the store does not.
var ErrNotFound = errors.New("not found")

// Collection names in the external store.
const (
	ProfilesCollection = "profiles"
	NotesCollection    = "notes"
	SharesCollection   = "note_shares"
)

// ProfilesStore persists user profiles and resolves share tokens. The
// token lookup is the single remote procedure the sharing flow depends on.
type ProfilesStore interface {
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	FindProfileByShareToken(ctx context.Context, token string) (*model.Profile, error)
}

// NotesStore is the gateway to the notes collection. ListNotesByOwner
// returns notes ordered by updated_at descending and an empty slice when
// the owner has none. UpdateNote and DeleteNote operate by id only;
// ownership is the caller's concern.
type NotesStore interface {
	UpsertNote(ctx context.Context, note *model.Note) error
	FindNoteByID(ctx context.Context, id string) (*model.Note, error)
	ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, id string, fields model.NoteUpdate) error
	DeleteNote(ctx context.Context, id string) error
}

// SharesStore records share grants and lists the notes shared with a
// recipient. GrantShare is idempotent per (note, recipient): granting again
// updates the edit permission instead of adding a second row.
type SharesStore interface {
	GrantShare(ctx context.Context, share *model.NoteShare) error
	FindShare(ctx context.Context, noteID, recipientID string) (*model.NoteShare, error)
	ListSharedWith(ctx context.Context, recipientID string) ([]*model.SharedNote, error)
}
