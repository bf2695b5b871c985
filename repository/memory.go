package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/marcvalle10/notes-api/model"
)

// MemoryStore is the in-memory implementation of the store interfaces. It
// backs tests and local development where no MongoDB is available.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*model.Profile
	notes    map[string]*model.Note
	shares   map[string]*model.NoteShare
	failErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*model.Profile),
		notes:    make(map[string]*model.Note),
		shares:   make(map[string]*model.NoteShare),
	}
}

// ForceError makes every following call fail with err until called with nil.
// Tests use it to exercise store-failure paths.
func (m *MemoryStore) ForceError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

func shareKey(noteID, recipientID string) string {
	return noteID + "\x00" + recipientID
}

func (m *MemoryStore) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

func (m *MemoryStore) FindProfileByShareToken(ctx context.Context, token string) (*model.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	for _, p := range m.profiles {
		if p.ShareToken == token {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UpsertNote(ctx context.Context, note *model.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	copied := *note
	m.notes[note.ID] = &copied
	return nil
}

func (m *MemoryStore) FindNoteByID(ctx context.Context, id string) (*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	note, ok := m.notes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *note
	return &copied, nil
}

func (m *MemoryStore) ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	notes := []*model.Note{}
	for _, n := range m.notes {
		if n.OwnerID == ownerID {
			copied := *n
			notes = append(notes, &copied)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (m *MemoryStore) UpdateNote(ctx context.Context, id string, fields model.NoteUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	note, ok := m.notes[id]
	if !ok {
		return ErrNotFound
	}
	note.Title = fields.Title
	note.Content = fields.Content
	note.ColorValue = fields.ColorValue
	note.UpdatedAt = fields.UpdatedAt
	return nil
}

func (m *MemoryStore) DeleteNote(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.notes[id]; !ok {
		return ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

func (m *MemoryStore) GrantShare(ctx context.Context, share *model.NoteShare) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	key := shareKey(share.NoteID, share.RecipientID)
	if existing, ok := m.shares[key]; ok {
		existing.CanEdit = share.CanEdit
		return nil
	}
	copied := *share
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	m.shares[key] = &copied
	return nil
}

func (m *MemoryStore) FindShare(ctx context.Context, noteID, recipientID string) (*model.NoteShare, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	share, ok := m.shares[shareKey(noteID, recipientID)]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *share
	return &copied, nil
}

func (m *MemoryStore) ListSharedWith(ctx context.Context, recipientID string) ([]*model.SharedNote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	shared := []*model.SharedNote{}
	for _, s := range m.shares {
		if s.RecipientID != recipientID {
			continue
		}
		note, ok := m.notes[s.NoteID]
		if !ok {
			continue
		}
		shared = append(shared, &model.SharedNote{
			CanEdit: s.CanEdit,
			Note:    *note,
		})
	}
	sort.Slice(shared, func(i, j int) bool {
		return shared[i].Note.UpdatedAt.After(shared[j].Note.UpdatedAt)
	})
	return shared, nil
}

// CountNotes reports how many notes the store holds. Test helper.
func (m *MemoryStore) CountNotes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.notes)
}

// CountShares reports how many share grants the store holds. Test helper.
func (m *MemoryStore) CountShares() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.shares)
}
