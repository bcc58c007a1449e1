package services

import (
	"testing"
	"time"

	"orgsite-backend/config"
	site_errors "orgsite-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@example.org",
		AdminPassword: "s3cret",
		JWTSecret:     "test-signing-key",
		AuthTTLHours:  168,
	}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(authConfig())

	token, ttl, err := svc.Login("admin@example.org", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 168*time.Hour, ttl)

	require.NoError(t, svc.ValidateToken(token))
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := NewAuthService(authConfig())
	_, _, err := svc.Login("Admin@Example.ORG", "s3cret")
	require.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(authConfig())
	_, _, err := svc.Login("admin@example.org", "nope")
	require.ErrorIs(t, err, site_errors.ErrUnauthorized)
}

func TestLogin_WrongEmail(t *testing.T) {
	svc := NewAuthService(authConfig())
	_, _, err := svc.Login("intruder@example.org", "s3cret")
	require.ErrorIs(t, err, site_errors.ErrUnauthorized)
}

func TestLogin_NoAdminConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "k"})
	_, _, err := svc.Login("", "")
	require.ErrorIs(t, err, site_errors.ErrUnauthorized)
}

func TestLogin_BcryptHashPreferred(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := authConfig()
	cfg.AdminPassword = "ignored"
	cfg.AdminPasswordHash = string(hash)
	svc := NewAuthService(cfg)

	_, _, err = svc.Login("admin@example.org", "hunter2")
	require.NoError(t, err)

	// the plain-text fallback must not apply once a hash is set
	_, _, err = svc.Login("admin@example.org", "ignored")
	require.ErrorIs(t, err, site_errors.ErrUnauthorized)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := NewAuthService(authConfig())

	require.ErrorIs(t, svc.ValidateToken(""), site_errors.ErrUnauthorized)
	require.ErrorIs(t, svc.ValidateToken("not-a-token"), site_errors.ErrUnauthorized)

	// token signed with a different key
	other := authConfig()
	other.JWTSecret = "some-other-key"
	foreign, _, err := NewAuthService(other).Login("admin@example.org", "s3cret")
	require.NoError(t, err)
	require.ErrorIs(t, svc.ValidateToken(foreign), site_errors.ErrUnauthorized)
}
