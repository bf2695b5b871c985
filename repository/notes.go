package repository

import (
	"context"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func NewNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection(NotesCollection),
	}
}

// UpsertNote writes the note keyed by its client-supplied id, overwriting
// any existing document with the same id.
func (r *NotesRepo) UpsertNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("upsert", NotesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": note.ID}
	update := bson.M{
		"$set": bson.M{
			"owner_id":    note.OwnerID,
			"title":       note.Title,
			"content":     note.Content,
			"color_value": note.ColorValue,
			"updated_at":  note.UpdatedAt,
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "note_upsert_failed")
		return err
	}
	return nil
}

func (r *NotesRepo) FindNoteByID(ctx context.Context, id string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// ListNotesByOwner returns the owner's notes newest-first. No notes is an
// empty slice, not an error.
func (r *NotesRepo) ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		utils.TrackError("database", "note_list_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_list_decode_error")
		return nil, err
	}
	return notes, nil
}

// UpdateNote sets the mutable fields of the note with the given id. A write
// that matches no document returns ErrNotFound.
func (r *NotesRepo) UpdateNote(ctx context.Context, id string, fields model.NoteUpdate) error {
	timer := utils.TrackDBOperation("update", NotesCollection)
	defer timer.ObserveDuration()

	update := bson.M{
		"$set": bson.M{
			"title":       fields.Title,
			"content":     fields.Content,
			"color_value": fields.ColorValue,
			"updated_at":  fields.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, id string) error {
	timer := utils.TrackDBOperation("delete", NotesCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
