package service_test

import (
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/internal/model"
	"travel-planner/internal/security"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:     "access-secret",
		RefreshSecret:    "refresh-secret",
		AccessAlgorithm:  "HS256",
		RefreshAlgorithm: "HS256",
		AccessTokenTTL:   "30m",
		RefreshTokenTTL:  "3h",
	}
}

func newTokenService(t *testing.T, now *time.Time) *security.TokenService {
	t.Helper()
	svc, err := security.NewTokenService(testJWTConfig(), security.WithClock(func() time.Time { return *now }))
	require.NoError(t, err)
	return svc
}

func newUser(t *testing.T, username, password string, scopes ...string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		UserID:       uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Email:        username + "@example.com",
		IsActive:     true,
		Scopes:       pq.StringArray(scopes),
	}
}
