package usecase

import (
	"context"
	"errors"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/repository"
)

type NotesService struct {
	Notes  repository.NotesStore
	Shares repository.SharesStore
}

// UpsertNote writes the caller's note. An id that already belongs to another
// user is rejected; the original owner is never reassigned.
func (svc *NotesService) UpsertNote(ctx context.Context, note *model.Note) error {
	existing, err := svc.Notes.FindNoteByID(ctx, note.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return wrapStore(err)
	}
	if existing != nil && existing.OwnerID != note.OwnerID {
		return ErrNotOwner
	}

	return wrapStore(svc.Notes.UpsertNote(ctx, note))
}

// ListNotes returns the caller's own notes, newest first.
func (svc *NotesService) ListNotes(ctx context.Context, ownerID string) ([]*model.Note, error) {
	notes, err := svc.Notes.ListNotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrapStore(err)
	}
	return notes, nil
}

// UpdateNote overwrites the note's fields. Allowed for the owner and for
// recipients holding an edit grant; everyone else is rejected.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, requesterID string, fields model.NoteUpdate) error {
	note, err := svc.Notes.FindNoteByID(ctx, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		return wrapStore(err)
	}

	if note.OwnerID != requesterID {
		share, err := svc.Shares.FindShare(ctx, noteID, requesterID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotOwner
		}
		if err != nil {
			return wrapStore(err)
		}
		if !share.CanEdit {
			return ErrNotOwner
		}
	}

	err = svc.Notes.UpdateNote(ctx, noteID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	return wrapStore(err)
}

// DeleteNote removes the note. Owner only; an edit grant does not extend to
// deletion.
func (svc *NotesService) DeleteNote(ctx context.Context, noteID, requesterID string) error {
	note, err := svc.Notes.FindNoteByID(ctx, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	if err != nil {
		return wrapStore(err)
	}
	if note.OwnerID != requesterID {
		return ErrNotOwner
	}

	err = svc.Notes.DeleteNote(ctx, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotFound
	}
	return wrapStore(err)
}
