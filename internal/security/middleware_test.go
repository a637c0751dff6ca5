package security_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travel-planner/internal/apperror"
	"travel-planner/internal/mocks"
	"travel-planner/internal/model"
	"travel-planner/internal/security"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user, err := security.GetUserFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthorizer_RequireScopes(t *testing.T) {
	now := fixedNow
	tokens := newTokenService(t, &now)
	db := &mocks.FakeDB{}

	plannerToken, err := tokens.IssueAccessToken("alice", []string{"user", "planner"})
	require.NoError(t, err)
	userToken, err := tokens.IssueAccessToken("alice", []string{"user"})
	require.NoError(t, err)

	alice := func(scopes ...string) *model.User {
		return &model.User{UserID: uuid.New(), Username: "alice", IsActive: true, Scopes: pq.StringArray(scopes)}
	}

	tests := []struct {
		name         string
		header       string
		routeScopes  []string
		setupMocks   func(u *mocks.MockUserRepository)
		expectStatus int
		expectCalled bool
	}{
		{
			name:         "no bearer header",
			header:       "",
			routeScopes:  []string{"user"},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			header:       "Bearer nope",
			routeScopes:  []string{"user"},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:        "deleted user",
			header:      "Bearer " + plannerToken,
			routeScopes: []string{"planner"},
			setupMocks: func(u *mocks.MockUserRepository) {
				u.On("FindByUsername", mock.Anything, db, "alice").Return(nil, apperror.New(apperror.KindNotFound, "user not found"))
			},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:        "token lacks route scope",
			header:      "Bearer " + userToken,
			routeScopes: []string{"planner"},
			setupMocks: func(u *mocks.MockUserRepository) {
				u.On("FindByUsername", mock.Anything, db, "alice").Return(alice("user", "planner"), nil)
			},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:        "scope revoked in storage after issuance",
			header:      "Bearer " + plannerToken,
			routeScopes: []string{"planner"},
			setupMocks: func(u *mocks.MockUserRepository) {
				u.On("FindByUsername", mock.Anything, db, "alice").Return(alice("user"), nil)
			},
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:        "repository failure",
			header:      "Bearer " + plannerToken,
			routeScopes: []string{"planner"},
			setupMocks: func(u *mocks.MockUserRepository) {
				u.On("FindByUsername", mock.Anything, db, "alice").Return(nil, errors.New("connection refused"))
			},
			expectStatus: http.StatusInternalServerError,
		},
		{
			name:        "authorized",
			header:      "Bearer " + plannerToken,
			routeScopes: []string{"planner"},
			setupMocks: func(u *mocks.MockUserRepository) {
				u.On("FindByUsername", mock.Anything, db, "alice").Return(alice("user", "planner"), nil)
			},
			expectStatus: http.StatusOK,
			expectCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(users)
			}
			authz := security.NewAuthorizer(tokens, users, db)

			called := false
			handler := authz.RequireScopes(tt.routeScopes...)(protectedHandler(t, &called))

			req := httptest.NewRequest(http.MethodGet, "/v1/planner/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectCalled, called)
			if tt.expectStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `Bearer scope="`)
			}
			users.AssertExpectations(t)
		})
	}
}

func TestAuthorizer_ExpiredToken(t *testing.T) {
	now := fixedNow
	tokens := newTokenService(t, &now)
	users := new(mocks.MockUserRepository)

	token, err := tokens.IssueAccessToken("alice", []string{"user"})
	require.NoError(t, err)
	now = fixedNow.Add(time.Hour)

	called := false
	handler := security.NewAuthorizer(tokens, users, &mocks.FakeDB{}).RequireScopes("user")(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequireActive(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name   string
		user   *model.User
		status int
	}{
		{"no user in context", nil, http.StatusUnauthorized},
		{"inactive", &model.User{Username: "alice", IsActive: false}, http.StatusBadRequest},
		{"active", &model.User{Username: "alice", IsActive: true}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
			if tt.user != nil {
				req = req.WithContext(security.WithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			security.RequireActive(next).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
