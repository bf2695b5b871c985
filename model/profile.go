package model

// Profile is the per-user record keyed by the identity provider's user id.
// ShareToken is the opaque string other users present to share notes with
// this profile; it is distinct from the bearer token.
type Profile struct {
	UserID     string `bson:"_id" json:"user_id"`
	Name       string `bson:"name" json:"name"`
	ShareToken string `bson:"share_token" json:"share_token"`
}
