package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/model"
	"travel-planner/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{
	"user_id", "username", "password", "email", "is_active",
	"phone_number", "date_of_birth", "profile_picture", "scopes", "created_at",
}

func newMockDatabase(t *testing.T) (*config.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &config.Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	user := &model.User{
		UserID:       uuid.New(),
		Username:     "alice",
		PasswordHash: "hash",
		Email:        "alice@example.com",
		IsActive:     true,
		Scopes:       pq.StringArray{model.ScopeUser},
	}
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.UserID, "alice", "hash", "alice@example.com", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.CreateUser(context.Background(), database, user)
	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.Equal(t, "alice", created.Username)
	assert.True(t, user.CreatedAt.IsZero(), "исходная структура не меняется")
}

func TestUserRepository_CreateUser_Conflict(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		message    string
	}{
		{"username taken", "users_username_key", "username or email already exists"},
		{"email taken", "users_email_key", "username or email already exists"},
		{"phone taken", "users_phone_number_key", "phone number already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := repository.NewUserRepository(database)

			mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			_, err := repo.CreateUser(context.Background(), database, &model.User{UserID: uuid.New()})
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperror.ErrConflict))
			assert.Equal(t, tt.message, apperror.PublicMessage(err))
		})
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumnNames).AddRow(
			id.String(), "alice", "hash", "alice@example.com", true,
			nil, nil, nil, "{user,planner}", time.Now(),
		))

	user, err := repo.FindByUsername(context.Background(), database, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.UserID)
	assert.Equal(t, pq.StringArray{"user", "planner"}, user.Scopes)
	assert.Nil(t, user.PhoneNumber)
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumnNames))

	_, err := repo.FindByUsername(context.Background(), database, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestUserRepository_Updates(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		query     string
		affected  int64
		run       func(r *repository.UserRepository, exec sqlx.ExtContext) error
		expectErr error
	}{
		{
			name:     "update username",
			query:    "UPDATE users SET username = $2 WHERE user_id = $1",
			affected: 1,
			run: func(r *repository.UserRepository, exec sqlx.ExtContext) error {
				return r.UpdateUsername(context.Background(), exec, id, "bob")
			},
		},
		{
			name:     "deactivate",
			query:    "UPDATE users SET is_active = $2 WHERE user_id = $1",
			affected: 1,
			run: func(r *repository.UserRepository, exec sqlx.ExtContext) error {
				return r.SetActive(context.Background(), exec, id, false)
			},
		},
		{
			name:     "clear profile picture",
			query:    "UPDATE users SET profile_picture = $2 WHERE user_id = $1",
			affected: 1,
			run: func(r *repository.UserRepository, exec sqlx.ExtContext) error {
				return r.UpdateProfilePicture(context.Background(), exec, id, nil)
			},
		},
		{
			name:      "delete missing user",
			query:     "DELETE FROM users WHERE user_id = $1",
			affected:  0,
			expectErr: apperror.ErrNotFound,
			run: func(r *repository.UserRepository, exec sqlx.ExtContext) error {
				return r.DeleteUser(context.Background(), exec, id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMockDatabase(t)
			repo := repository.NewUserRepository(database)

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := tt.run(repo, database)
			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserRepository_DriverFailureIsInternal(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := repository.NewUserRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY created_at")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListUsers(context.Background(), database)
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, "internal server error", apperror.PublicMessage(err))
}
