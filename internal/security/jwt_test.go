package security_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/internal/security"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
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

func payload(t *testing.T, token string) map[string]any {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	token, err := svc.IssueAccessToken("alice", []string{"user", "planner"})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{"user", "planner"}, claims.Scopes)
	assert.Equal(t, fixedNow.Add(30*time.Minute), claims.ExpiresAt.Time.UTC())

	body := payload(t, token)
	assert.NotContains(t, body, "jti")
	assert.ElementsMatch(t, []string{"sub", "scopes", "exp"}, keys(body))
}

func TestTokenService_RefreshCarriesUniqueJTI(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	first, err := svc.IssueRefreshToken("alice", []string{"user"})
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken("alice", []string{"user"})
	require.NoError(t, err)

	c1, err := svc.ParseRefreshToken(first)
	require.NoError(t, err)
	c2, err := svc.ParseRefreshToken(second)
	require.NoError(t, err)

	assert.NotEmpty(t, c1.ID)
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.Equal(t, fixedNow.Add(3*time.Hour), c1.ExpiresAt.Time.UTC())
	assert.ElementsMatch(t, []string{"sub", "scopes", "exp", "jti"}, keys(payload(t, first)))
}

func TestTokenService_AccessExpiresBeforeRefresh(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	access, err := svc.IssueAccessToken("alice", []string{"user"})
	require.NoError(t, err)
	refresh, err := svc.IssueRefreshToken("alice", []string{"user"})
	require.NoError(t, err)

	ac, err := svc.ParseAccessToken(access)
	require.NoError(t, err)
	rc, err := svc.ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.True(t, ac.ExpiresAt.Before(rc.ExpiresAt.Time))
}

func TestTokenService_KeySeparation(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	access, err := svc.IssueAccessToken("alice", []string{"user"})
	require.NoError(t, err)
	refresh, err := svc.IssueRefreshToken("alice", []string{"user"})
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)

	_, err = svc.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestTokenService_Expired(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	token, err := svc.IssueAccessToken("alice", []string{"user"})
	require.NoError(t, err)

	now = fixedNow.Add(31 * time.Minute)
	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestTokenService_RejectsOtherAlgorithm(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	claims := jwt.MapClaims{"sub": "alice", "scopes": []string{"user"}, "exp": fixedNow.Add(time.Minute).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(forged)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	now := fixedNow
	svc := newTokenService(t, &now)

	_, err := svc.ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestTokenService_UnknownAlgorithm(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessAlgorithm = "HS999"

	svc, err := security.NewTokenService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := security.HashPassword("Secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret1", hash)
	assert.True(t, security.CheckPassword("Secret1", hash))
	assert.False(t, security.CheckPassword("secret1", hash))
}

func TestScopes(t *testing.T) {
	assert.Equal(t, []string{"user"}, security.Intersect([]string{"user", "planner"}, []string{"user"}, []string{"user", "admin"}))
	assert.Empty(t, security.Intersect([]string{"planner"}, []string{"user"}))
	assert.True(t, security.IsSubset([]string{"user"}, []string{"user", "planner"}))
	assert.False(t, security.IsSubset([]string{"admin"}, []string{"user", "planner"}))
	assert.False(t, security.IsSubset(nil, []string{"user"}))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
