package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marcvalle10/notes-api/model"
)

// ErrInvalidToken means the bearer token failed verification: bad signature,
// expired, malformed, or rejected by the remote provider.
var ErrInvalidToken = errors.New("invalid token")

// IdentityProvider resolves a bearer token to the identity it was issued to.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}

// JWTVerifier checks HS256 tokens locally against a shared secret. The
// subject claim carries the user id.
type JWTVerifier struct {
	Secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{Secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*model.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	identity := &model.Identity{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}

// RemoteVerifier asks the identity provider who a token belongs to by
// replaying it against the provider's user endpoint.
type RemoteVerifier struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteVerifier(baseURL string, client *http.Client) *RemoteVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteVerifier{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", v.BaseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if identity.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &identity, nil
}
