package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

// IFeedbackStore is the append-only per-user feedback log. The backing medium
// (CSV file, database) is swappable behind this interface.
type IFeedbackStore interface {
	Append(userID, responseID, kind, content string) error
	Load(userID string) ([]models.FeedbackRecord, error)
}

// IPreferenceAnalyzer reduces a feedback log into a bounded preference summary
type IPreferenceAnalyzer interface {
	Summarize(userID string) (types.PreferenceSummary, error)
}

// IResponseGateway dispatches a composed prompt to the generative model.
// It always returns a string: failures degrade to fixed user-facing messages.
type IResponseGateway interface {
	Ask(ctx context.Context, prompt types.Prompt, imageData []byte) string
}

// ITranslator maps text into a target language. No observable failure mode:
// implementations return the input unchanged when they cannot translate.
type ITranslator interface {
	Translate(ctx context.Context, text, targetLanguage, sourceLanguage string) string
}

// IResponseCache maps a generated response id to its content until feedback
// consumes it.
type IResponseCache interface {
	Put(ctx context.Context, content string) (string, error)
	Take(ctx context.Context, id string) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) error
}
