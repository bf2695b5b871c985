package dto

import (
	"github.com/marcvalle10/notes-api/model"
)

type UpsertProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Token string `json:"token" binding:"required"`
}

func (r *UpsertProfileRequest) ToProfile(userID string) *model.Profile {
	return &model.Profile{
		UserID:     userID,
		Name:       r.Name,
		ShareToken: r.Token,
	}
}
