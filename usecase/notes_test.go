package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/repository"
)

func newNotesService() (*NotesService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	return &NotesService{Notes: store, Shares: store}, store
}

func TestUpsertNote(t *testing.T) {
	ctx := context.Background()

	t.Run("new note stored with the caller as owner", func(t *testing.T) {
		svc, store := newNotesService()
		err := svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "alice", Title: "hello", UpdatedAt: time.Now()})
		require.NoError(t, err)

		note, err := store.FindNoteByID(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, "alice", note.OwnerID)
		assert.Equal(t, "hello", note.Title)
	})

	t.Run("owner re-upsert overwrites in place", func(t *testing.T) {
		svc, store := newNotesService()
		require.NoError(t, svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "alice", Title: "v1", UpdatedAt: time.Now()}))
		require.NoError(t, svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "alice", Title: "v2", UpdatedAt: time.Now()}))

		assert.Equal(t, 1, store.CountNotes())
		note, err := store.FindNoteByID(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, "v2", note.Title)
	})

	t.Run("foreign note id rejected and left untouched", func(t *testing.T) {
		svc, store := newNotesService()
		require.NoError(t, svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "alice", Title: "alice's", UpdatedAt: time.Now()}))

		err := svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "mallory", Title: "taken over", UpdatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrNotOwner)

		note, err := store.FindNoteByID(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, "alice", note.OwnerID)
		assert.Equal(t, "alice's", note.Title)
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		svc, store := newNotesService()
		store.ForceError(errors.New("no reachable servers"))

		err := svc.UpsertNote(ctx, &model.Note{ID: "n1", OwnerID: "alice", Title: "x", UpdatedAt: time.Now()})
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "no reachable servers", err.Error())
	})
}

func TestListNotes(t *testing.T) {
	ctx := context.Background()
	svc, store := newNotesService()

	base := time.Now()
	notes := []struct {
		id    string
		owner string
		age   time.Duration
	}{
		{"a1", "alice", 2 * time.Hour},
		{"a2", "alice", time.Hour},
		{"b1", "bob", 0},
	}
	for _, n := range notes {
		require.NoError(t, store.UpsertNote(ctx, &model.Note{
			ID: n.id, OwnerID: n.owner, Title: n.id, UpdatedAt: base.Add(-n.age),
		}))
	}

	t.Run("only the owner's notes, newest first", func(t *testing.T) {
		got, err := svc.ListNotes(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a2", got[0].ID)
		assert.Equal(t, "a1", got[1].ID)
	})

	t.Run("empty slice for owners with no notes", func(t *testing.T) {
		got, err := svc.ListNotes(ctx, "carol")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*NotesService, *repository.MemoryStore) {
		svc, store := newNotesService()
		require.NoError(t, store.UpsertNote(ctx, &model.Note{
			ID: "n1", OwnerID: "alice", Title: "original", Content: "body", UpdatedAt: time.Now(),
		}))
		return svc, store
	}

	grant := func(t *testing.T, store *repository.MemoryStore, recipient string, canEdit bool) {
		require.NoError(t, store.GrantShare(ctx, &model.NoteShare{
			NoteID: "n1", RecipientID: recipient, CanEdit: canEdit, CreatedAt: time.Now(),
		}))
	}

	t.Run("owner updates", func(t *testing.T) {
		svc, store := setup(t)
		err := svc.UpdateNote(ctx, "n1", "alice", model.NoteUpdate{Title: "renamed", UpdatedAt: time.Now()})
		require.NoError(t, err)

		note, err := store.FindNoteByID(ctx, "n1")
		require.NoError(t, err)
		assert.Equal(t, "renamed", note.Title)
		// Absent fields overwrite with zero values
		assert.Equal(t, "", note.Content)
	})

	t.Run("recipient with edit grant updates", func(t *testing.T) {
		svc, store := setup(t)
		grant(t, store, "bob", true)
		err := svc.UpdateNote(ctx, "n1", "bob", model.NoteUpdate{Title: "bob was here", UpdatedAt: time.Now()})
		assert.NoError(t, err)
	})

	t.Run("recipient with read-only grant rejected", func(t *testing.T) {
		svc, store := setup(t)
		grant(t, store, "bob", false)
		err := svc.UpdateNote(ctx, "n1", "bob", model.NoteUpdate{Title: "nope", UpdatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("stranger rejected", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.UpdateNote(ctx, "n1", "mallory", model.NoteUpdate{Title: "nope", UpdatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("missing note", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.UpdateNote(ctx, "ghost", "alice", model.NoteUpdate{UpdatedAt: time.Now()})
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*NotesService, *repository.MemoryStore) {
		svc, store := newNotesService()
		require.NoError(t, store.UpsertNote(ctx, &model.Note{
			ID: "n1", OwnerID: "alice", Title: "keep me", UpdatedAt: time.Now(),
		}))
		return svc, store
	}

	t.Run("owner deletes", func(t *testing.T) {
		svc, store := setup(t)
		require.NoError(t, svc.DeleteNote(ctx, "n1", "alice"))
		assert.Equal(t, 0, store.CountNotes())
	})

	t.Run("edit grant does not allow deletion", func(t *testing.T) {
		svc, store := setup(t)
		require.NoError(t, store.GrantShare(ctx, &model.NoteShare{
			NoteID: "n1", RecipientID: "bob", CanEdit: true, CreatedAt: time.Now(),
		}))
		err := svc.DeleteNote(ctx, "n1", "bob")
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, 1, store.CountNotes())
	})

	t.Run("missing note", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.DeleteNote(ctx, "ghost", "alice")
		assert.ErrorIs(t, err, ErrNoteNotFound)
	})
}
