package repository

import (
	"context"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfilesRepo struct {
	MongoCollection *mongo.Collection
}

func NewProfilesRepo(db *mongo.Database) *ProfilesRepo {
	return &ProfilesRepo{
		MongoCollection: db.Collection(ProfilesCollection),
	}
}

// UpsertProfile inserts or replaces the profile keyed by the user id.
func (r *ProfilesRepo) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	timer := utils.TrackDBOperation("upsert", ProfilesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"name":        profile.Name,
			"share_token": profile.ShareToken,
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "profile_upsert_failed")
		return err
	}
	return nil
}

// FindProfileByShareToken resolves a share token to the profile holding it.
// Zero matches map to ErrNotFound.
func (r *ProfilesRepo) FindProfileByShareToken(ctx context.Context, token string) (*model.Profile, error) {
	timer := utils.TrackDBOperation("find", ProfilesCollection)
	defer timer.ObserveDuration()

	var profile model.Profile
	err := r.MongoCollection.FindOne(ctx, bson.M{"share_token": token}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		utils.TrackError("database", "profile_lookup_error")
		return nil, err
	}
	return &profile, nil
}
