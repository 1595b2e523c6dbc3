package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 72*time.Hour, cfg.JWTTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.False(t, cfg.IsProduction())
	require.False(t, cfg.CloudinaryEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.True(t, cfg.CloudinaryEnabled())
}

func TestLoadRejectsDefaultSecretsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsNonPositiveTTL(t *testing.T) {
	cfg := &Config{JWTSecret: "a", PassSecret: "b", JWTTTL: 0}
	require.Error(t, cfg.Validate())
}
