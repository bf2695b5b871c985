package repository

import (
	"context"
	"sort"
	"time"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SharesRepo struct {
	MongoCollection *mongo.Collection
	NotesCollection *mongo.Collection
}

func NewSharesRepo(db *mongo.Database) *SharesRepo {
	return &SharesRepo{
		MongoCollection: db.Collection(SharesCollection),
		NotesCollection: db.Collection(NotesCollection),
	}
}

// GrantShare records the share. Granting the same note to the same
// recipient again updates the edit permission in place.
func (r *SharesRepo) GrantShare(ctx context.Context, share *model.NoteShare) error {
	timer := utils.TrackDBOperation("upsert", SharesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"note_id":      share.NoteID,
		"recipient_id": share.RecipientID,
	}
	update := bson.M{
		"$set":         bson.M{"can_edit": share.CanEdit},
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "share_grant_failed")
		return err
	}
	return nil
}

// FindShare looks up the grant for one (note, recipient) pair.
func (r *SharesRepo) FindShare(ctx context.Context, noteID, recipientID string) (*model.NoteShare, error) {
	timer := utils.TrackDBOperation("find", SharesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"note_id":      noteID,
		"recipient_id": recipientID,
	}

	var share model.NoteShare
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&share)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", "share_lookup_error")
		return nil, err
	}
	return &share, nil
}

// ListSharedWith returns the (can_edit, note) pairs for every note shared
// with the recipient, newest note first. Grants whose note has since been
// deleted are skipped.
func (r *SharesRepo) ListSharedWith(ctx context.Context, recipientID string) ([]*model.SharedNote, error) {
	timer := utils.TrackDBOperation("find", SharesCollection)
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"recipient_id": recipientID})
	if err != nil {
		utils.TrackError("database", "share_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	var shares []*model.NoteShare
	if err = cursor.All(ctx, &shares); err != nil {
		utils.TrackError("database", "share_list_decode_error")
		return nil, err
	}
	if len(shares) == 0 {
		return []*model.SharedNote{}, nil
	}

	canEdit := make(map[string]bool, len(shares))
	noteIDs := make([]string, 0, len(shares))
	for _, s := range shares {
		canEdit[s.NoteID] = s.CanEdit
		noteIDs = append(noteIDs, s.NoteID)
	}

	noteCursor, err := r.NotesCollection.Find(ctx, bson.M{"_id": bson.M{"$in": noteIDs}})
	if err != nil {
		utils.TrackError("database", "share_notes_error")
		return nil, err
	}
	defer noteCursor.Close(ctx)

	var notes []*model.Note
	if err = noteCursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "share_notes_decode_error")
		return nil, err
	}

	shared := make([]*model.SharedNote, 0, len(notes))
	for _, n := range notes {
		shared = append(shared, &model.SharedNote{
			CanEdit: canEdit[n.ID],
			Note:    *n,
		})
	}
	sort.Slice(shared, func(i, j int) bool {
		return shared[i].Note.UpdatedAt.After(shared[j].Note.UpdatedAt)
	})
	return shared, nil
}
