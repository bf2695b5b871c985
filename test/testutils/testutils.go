package testutils

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/marcvalle10/notes-api/handler"
	"github.com/marcvalle10/notes-api/middleware"
	"github.com/marcvalle10/notes-api/model"
	"github.com/marcvalle10/notes-api/repository"
	"github.com/marcvalle10/notes-api/services"
	"github.com/marcvalle10/notes-api/usecase"
	"github.com/marcvalle10/notes-api/utils"
)

// TestJWTSecret signs the tokens SignTestToken issues and backs the verifier
// NewRouter installs.
const TestJWTSecret = "test-secret-key"

// SetupTestEnvironment puts gin in test mode and registers the JSON tag name
// function binding errors depend on. Call it from an init in each test
// package that drives HTTP requests.
func SetupTestEnvironment() {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")
	utils.InitValidator()
}

// SignTestToken issues an HS256 token carrying the user id as subject,
// valid for an hour.
func SignTestToken(userID string) string {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(TestJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// AuthHeader returns the Authorization header value for the user.
func AuthHeader(userID string) string {
	return "Bearer " + SignTestToken(userID)
}

// StaticVerifier resolves every token to a fixed identity, or fails with
// Err when set. It stands in for the identity provider where a test needs
// to force the verification outcome.
type StaticVerifier struct {
	UserID string
	Err    error
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	return &model.Identity{UserID: v.UserID}, nil
}

// NewRouter wires the handlers against the store the way main does, with a
// JWT verifier accepting tokens from SignTestToken. The ops middleware stack
// is left out; tests exercise routes, not telemetry.
func NewRouter(store *repository.MemoryStore) *gin.Engine {
	return NewRouterWithVerifier(store, services.NewJWTVerifier(TestJWTSecret))
}

// NewRouterWithVerifier is NewRouter with the identity provider swapped out.
func NewRouterWithVerifier(store *repository.MemoryStore, provider services.IdentityProvider) *gin.Engine {
	profileService := &usecase.ProfileService{Profiles: store}
	notesService := &usecase.NotesService{Notes: store, Shares: store}
	shareService := &usecase.ShareService{
		Profiles: store,
		Notes:    store,
		Shares:   store,
	}

	profileHandler := handler.NewProfileHandler(profileService)
	notesHandler := handler.NewNotesHandler(notesService)
	shareHandler := handler.NewShareHandler(shareService)

	router := gin.New()

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(provider))
	{
		protected.POST("/profile", profileHandler.UpsertProfile)

		protected.POST("/notes", notesHandler.UpsertNote)
		protected.GET("/notes", notesHandler.ListNotes)
		protected.PUT("/notes/:id", notesHandler.UpdateNote)
		protected.DELETE("/notes/:id", notesHandler.DeleteNote)

		protected.GET("/shared", shareHandler.ListShared)
		protected.POST("/share", shareHandler.ShareNote)
	}

	return router
}
