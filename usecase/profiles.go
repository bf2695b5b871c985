package usecase

import (
	"context"

	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/repository"
)

type ProfileService struct {
	Profiles repository.ProfilesStore
}

// UpsertProfile creates or refreshes the caller's profile. The share token
// is how other users will address them for sharing.
func (svc *ProfileService) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	return wrapStore(svc.Profiles.UpsertProfile(ctx, profile))
}
