package model

// Identity is a user resolved from a bearer token by the identity provider.
// Identities are never persisted by this service.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
}
