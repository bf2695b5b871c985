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

func seedProfile(t *testing.T, store *repository.MemoryStore, userID, name, token string) {
	t.Helper()
	err := store.UpsertProfile(context.Background(), &model.Profile{
		UserID:     userID,
		Name:       name,
		ShareToken: token,
	})
	require.NoError(t, err)
}

func seedNote(t *testing.T, store *repository.MemoryStore, id, ownerID, title string) {
	t.Helper()
	err := store.UpsertNote(context.Background(), &model.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     title,
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
}

// failingShares delegates everything except the grant write, which always
// fails with the configured error.
type failingShares struct {
	repository.SharesStore
	err error
}

func (f failingShares) GrantShare(ctx context.Context, share *model.NoteShare) error {
	return f.err
}

func TestShareNote(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*ShareService, *repository.MemoryStore) {
		store := repository.NewMemoryStore()
		seedProfile(t, store, "alice", "Alice", "T1")
		seedProfile(t, store, "bob", "Bob", "T2")
		seedNote(t, store, "n1", "alice", "Alice's note")
		return &ShareService{Profiles: store, Notes: store, Shares: store}, store
	}

	t.Run("unknown token", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.ShareNote(ctx, "alice", "n1", "no-such-token", false)
		assert.ErrorIs(t, err, ErrTokenNotFound)
	})

	t.Run("self share never reaches the grant write", func(t *testing.T) {
		svc, store := newService(t)
		err := svc.ShareNote(ctx, "alice", "n1", "T1", true)
		assert.ErrorIs(t, err, ErrSelfShare)
		assert.Equal(t, 0, store.CountShares())
	})

	t.Run("unsynced note rejected even with a valid token", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.ShareNote(ctx, "alice", "never-synced", "T2", false)
		assert.ErrorIs(t, err, ErrNoteNotSynced)
	})

	t.Run("non-owner rejected even when the token resolves", func(t *testing.T) {
		svc, store := newService(t)
		err := svc.ShareNote(ctx, "bob", "n1", "T1", false)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, 0, store.CountShares())
	})

	t.Run("owner shares and recipient sees the note", func(t *testing.T) {
		svc, _ := newService(t)
		err := svc.ShareNote(ctx, "alice", "n1", "T2", true)
		require.NoError(t, err)

		shared, err := svc.ListShared(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, shared, 1)
		assert.True(t, shared[0].CanEdit)
		assert.Equal(t, "n1", shared[0].Note.ID)
		assert.Equal(t, "Alice's note", shared[0].Note.Title)
	})

	t.Run("re-share updates the permission without a second grant", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.ShareNote(ctx, "alice", "n1", "T2", false))
		require.NoError(t, svc.ShareNote(ctx, "alice", "n1", "T2", true))

		assert.Equal(t, 1, store.CountShares())
		shared, err := svc.ListShared(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, shared, 1)
		assert.True(t, shared[0].CanEdit)
	})

	t.Run("grant failure surfaces the store message verbatim", func(t *testing.T) {
		svc, store := newService(t)
		svc.Shares = failingShares{SharesStore: store, err: errors.New("write concern timeout")}

		err := svc.ShareNote(ctx, "alice", "n1", "T2", false)
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "write concern timeout", err.Error())
	})

	t.Run("token lookup failure is a store error, not token-not-found", func(t *testing.T) {
		svc, store := newService(t)
		store.ForceError(errors.New("connection reset"))

		err := svc.ShareNote(ctx, "alice", "n1", "T2", false)
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "connection reset", err.Error())
	})
}

func TestListShared(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := &ShareService{Profiles: store, Notes: store, Shares: store}

	seedProfile(t, store, "alice", "Alice", "T1")
	seedProfile(t, store, "bob", "Bob", "T2")

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		err := store.UpsertNote(ctx, &model.Note{
			ID:        id,
			OwnerID:   "alice",
			Title:     id,
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		require.NoError(t, svc.ShareNote(ctx, "alice", id, "T2", false))
	}

	t.Run("newest note first", func(t *testing.T) {
		shared, err := svc.ListShared(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, shared, 3)
		assert.Equal(t, "new", shared[0].Note.ID)
		assert.Equal(t, "mid", shared[1].Note.ID)
		assert.Equal(t, "old", shared[2].Note.ID)
	})

	t.Run("empty for users with no grants", func(t *testing.T) {
		shared, err := svc.ListShared(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, shared)
	})

	t.Run("grants whose note was deleted are skipped", func(t *testing.T) {
		require.NoError(t, store.DeleteNote(ctx, "mid"))
		shared, err := svc.ListShared(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, shared, 2)
		assert.Equal(t, "new", shared[0].Note.ID)
		assert.Equal(t, "old", shared[1].Note.ID)
	})
}
