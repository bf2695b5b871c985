package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profilesCollection := db.Collection(ProfilesCollection)
	notesCollection := db.Collection(NotesCollection)
	sharesCollection := db.Collection(SharesCollection)

	profileIndexes := []mongo.IndexModel{
		// Share tokens resolve to exactly one profile
		{
			Keys: bson.D{{Key: "share_token", Value: 1}},
			Options: options.Index().
				SetName("share_token_unique").
				SetUnique(true),
		},
	}

	noteIndexes := []mongo.IndexModel{
		// Owner listing, newest first
		{
			Keys: bson.D{
				{Key: "owner_id", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().
				SetName("owner_notes_date").
				SetUnique(false),
		},
	}

	shareIndexes := []mongo.IndexModel{
		// One grant per (note, recipient); re-sharing updates it in place
		{
			Keys: bson.D{
				{Key: "note_id", Value: 1},
				{Key: "recipient_id", Value: 1},
			},
			Options: options.Index().
				SetName("note_recipient_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "recipient_id", Value: 1}},
			Options: options.Index().
				SetName("recipient_index"),
		},
	}

	_, err := profilesCollection.Indexes().CreateMany(ctx, profileIndexes)
	if err != nil {
		return fmt.Errorf("failed to create profiles indexes: %w", err)
	}

	_, err = notesCollection.Indexes().CreateMany(ctx, noteIndexes)
	if err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	_, err = sharesCollection.Indexes().CreateMany(ctx, shareIndexes)
	if err != nil {
		return fmt.Errorf("failed to create note_shares indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
