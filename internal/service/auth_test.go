package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/nutrimentor/backend/internal/models"
	"github.com/pageza/nutrimentor/backend/internal/types"
)

const testJWTSecret = "test-jwt-secret"

func testRegisterRequest() *types.RegisterRequest {
	return &types.RegisterRequest{
		Name:              "Ana",
		Email:             "ana@example.com",
		Password:          "password123",
		Age:               34,
		Gender:            "female",
		Diet:              "vegetarian",
		Goal:              "weight loss",
		HeightCm:          168,
		WeightKg:          64,
		MedicalConditions: "none",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	authService := NewAuthService(db, testJWTSecret)

	t.Run("should register user with profile", func(t *testing.T) {
		token, err := authService.Register(ctx, testRegisterRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		var user models.User
		require.NoError(t, db.Where("email = ?", "ana@example.com").First(&user).Error)
		assert.Equal(t, "Ana", user.Name)
		assert.NotEqual(t, "password123", user.PasswordHash)

		var profile models.UserProfile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, 34, profile.Age)
		assert.Equal(t, "vegetarian", profile.Diet)
		assert.InDelta(t, 22.7, profile.BMI, 0.01)
		assert.Equal(t, "en-US", profile.PreferredLanguage)
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		_, err := authService.Register(ctx, testRegisterRequest())
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("should honor an explicit preferred language", func(t *testing.T) {
		req := testRegisterRequest()
		req.Email = "luis@example.com"
		req.PreferredLanguage = "es-ES"

		_, err := authService.Register(ctx, req)
		require.NoError(t, err)

		var user models.User
		require.NoError(t, db.Where("email = ?", "luis@example.com").First(&user).Error)
		var profile models.UserProfile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, "es-ES", profile.PreferredLanguage)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	authService := NewAuthService(db, testJWTSecret)

	_, err := authService.Register(ctx, testRegisterRequest())
	require.NoError(t, err)

	t.Run("should login with valid credentials", func(t *testing.T) {
		token, err := authService.Login(ctx, "ana@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		_, err := authService.Login(ctx, "ana@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("should reject unknown email", func(t *testing.T) {
		_, err := authService.Login(ctx, "nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	authService := NewAuthService(db, testJWTSecret)

	token, err := authService.Register(ctx, testRegisterRequest())
	require.NoError(t, err)

	t.Run("should validate its own token", func(t *testing.T) {
		claims, err := authService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "Ana", claims.Name)

		var user models.User
		require.NoError(t, db.Where("email = ?", "ana@example.com").First(&user).Error)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("should reject token signed with another secret", func(t *testing.T) {
		other := NewAuthService(db, "another-secret")
		otherToken, err := other.Login(ctx, "ana@example.com", "password123")
		require.NoError(t, err)

		_, err = authService.ValidateToken(otherToken)
		assert.Error(t, err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := authService.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
