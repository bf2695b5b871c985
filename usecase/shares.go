package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/repository"
)

type ShareService struct {
	Profiles repository.ProfilesStore
	Notes    repository.NotesStore
	Shares   repository.SharesStore
}

// ShareNote grants the holder of the given share token access to one of the
// requester's notes. Every step must pass before the grant is written:
//
//  1. the token resolves to a profile,
//  2. the recipient is not the requester,
//  3. the note exists server-side,
//  4. the requester owns the note.
//
// No transaction spans the note read and the grant write; ownership is
// immutable, so nothing can change between them that the check cares about.
func (svc *ShareService) ShareNote(ctx context.Context, requesterID, noteID, token string, canEdit bool) error {
	profile, err := svc.Profiles.FindProfileByShareToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTokenNotFound
	}
	if err != nil {
		return wrapStore(err)
	}

	if profile.UserID == requesterID {
		return ErrSelfShare
	}

	note, err := svc.Notes.FindNoteByID(ctx, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoteNotSynced
	}
	if err != nil {
		return wrapStore(err)
	}

	if note.OwnerID != requesterID {
		return ErrNotOwner
	}

	return wrapStore(svc.Shares.GrantShare(ctx, &model.NoteShare{
		NoteID:      noteID,
		RecipientID: profile.UserID,
		CanEdit:     canEdit,
		CreatedAt:   time.Now(),
	}))
}

// ListShared returns the notes other users shared with the recipient,
// newest first.
func (svc *ShareService) ListShared(ctx context.Context, recipientID string) ([]*model.SharedNote, error) {
	shared, err := svc.Shares.ListSharedWith(ctx, recipientID)
	if err != nil {
		return nil, wrapStore(err)
	}
	return shared, nil
}
