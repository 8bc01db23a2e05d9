package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvironment(t *testing.T) {
	t.Run("CI flag wins", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("ENV", "production")
		assert.Equal(t, CI, GetEnvironment())
		assert.True(t, IsCI())
	})

	t.Run("ENV selects the environment", func(t *testing.T) {
		t.Setenv("CI", "")
		t.Setenv("ENV", "production")
		assert.Equal(t, Production, GetEnvironment())
		assert.True(t, IsProduction())

		t.Setenv("ENV", "test")
		assert.Equal(t, Test, GetEnvironment())
		assert.True(t, IsTest())
	})

	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("CI", "")
		t.Setenv("ENV", "")
		assert.Equal(t, Development, GetEnvironment())
		assert.True(t, IsDevelopment())
	})
}

func validTestConfig() *Config {
	return &Config{
		ServerPort: "8080",
		ServerHost: "0.0.0.0",
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "nutrimentor",
		DBSSLMode:  "disable",
		RedisHost:  "localhost",
		RedisPort:  "6379",
		JWTSecret:  "jwt-secret",
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(validTestConfig()))
	})

	t.Run("rejects missing db password", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.DBPassword = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db password is required")
	})

	t.Run("rejects missing jwt secret", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.JWTSecret = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt secret is required")
	})

	t.Run("requires redis host or url", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.RedisHost = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis host or redis url is required")

		cfg.RedisURL = "redis://localhost:6379"
		assert.NoError(t, ValidateConfig(cfg))
	})

	t.Run("reports missing server settings", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.ServerPort = ""
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server port")
	})
}

func TestLoadConfig_CI(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "nutrimentor_test")
	t.Setenv("DB_SSL_MODE", "disable")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("TEST_DB_PASSWORD", "secret")
	t.Setenv("TEST_JWT_SECRET", "jwt-secret")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("FEEDBACK_DATA_DIR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "nutrimentor_test", cfg.DBName)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "jwt-secret", cfg.JWTSecret)
	// Data directories fall back to defaults.
	assert.NotEmpty(t, cfg.UploadDir)
	assert.NotEmpty(t, cfg.FeedbackDataDir)
}

func TestLoadConfig_CIMissingPassword(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("TEST_DB_PASSWORD", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_DB_PASSWORD")
}
