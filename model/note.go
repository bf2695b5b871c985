package model

import (
	"time"
)

// Note is a user-owned note. The ID is supplied by the client so notes
// created offline keep their identifier when they sync. OwnerID is set
// once at creation and never reassigned.
type Note struct {
	ID         string    `bson:"_id" json:"id"`
	OwnerID    string    `bson:"owner_id" json:"owner_id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	ColorValue int       `bson:"color_value" json:"color_value"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// NoteUpdate carries the mutable fields of a note. Absent request fields
// arrive as zero values and overwrite; only UpdatedAt is defaulted.
type NoteUpdate struct {
	Title      string    `bson:"title"`
	Content    string    `bson:"content"`
	ColorValue int       `bson:"color_value"`
	UpdatedAt  time.Time `bson:"updated_at"`
}
