package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter wires the handler routes behind a fake auth layer that injects
// the given user id, mirroring what the real middleware does.
func testRouter(userID uuid.UUID, register func(*gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set("user_id", userID)
			c.Set("name", "Ana")
		}
		c.Next()
	})
	register(group)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performMultipart(router *gin.Engine, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func chatForm(t *testing.T, fields map[string]string, imageBytes []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageBytes != nil {
		part, err := writer.CreateFormFile("food_image", "meal.jpg")
		require.NoError(t, err)
		_, err = part.Write(imageBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

// stubProfileService serves a fixed user and profile without a database.
type stubProfileService struct {
	user    *models.User
	profile *models.UserProfile
	err     error

	updatedLanguage string
	languageErr     error
}

func newStubProfileService(userID uuid.UUID) *stubProfileService {
	return &stubProfileService{
		user: &models.User{ID: userID, Name: "Ana", Email: "ana@example.com"},
		profile: &models.UserProfile{
			UserID:            userID,
			Age:               34,
			Gender:            "female",
			Diet:              "vegetarian",
			Goal:              "weight loss",
			HeightCm:          168,
			WeightKg:          64,
			BMI:               22.7,
			MedicalConditions: "none",
			PreferredLanguage: "en-US",
		},
	}
}

func (s *stubProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func (s *stubProfileService) UpdateLanguage(ctx context.Context, userID uuid.UUID, language string) error {
	if s.languageErr != nil {
		return s.languageErr
	}
	s.updatedLanguage = language
	return nil
}

// stubGateway records the prompt and image it was asked with and returns a
// canned answer.
type stubGateway struct {
	answer     string
	lastPrompt types.Prompt
	lastImage  []byte
}

func (g *stubGateway) Ask(ctx context.Context, prompt types.Prompt, imageData []byte) string {
	g.lastPrompt = prompt
	g.lastImage = imageData
	return g.answer
}

// stubAnalyzer returns a fixed summary or error.
type stubAnalyzer struct {
	summary types.PreferenceSummary
	err     error
}

func (a *stubAnalyzer) Summarize(userID string) (types.PreferenceSummary, error) {
	if a.err != nil {
		return types.PreferenceSummary{}, a.err
	}
	return a.summary, nil
}

// stubAuthService drives the auth handler without bcrypt or a database.
type stubAuthService struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error
}

func (s *stubAuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, error) {
	if s.registerErr != nil {
		return "", s.registerErr
	}
	return s.registerToken, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.loginToken, nil
}

func (s *stubAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	return nil, http.ErrNotSupported
}
