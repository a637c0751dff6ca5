package service_test

import (
	"context"
	"testing"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/mocks"
	"travel-planner/internal/model"
	"travel-planner/internal/security"
	"travel-planner/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*service.AdminService, *mocks.MockUserRepository, *mocks.FakeDB) {
	users := new(mocks.MockUserRepository)
	db := &mocks.FakeDB{}
	return service.NewAdminService(db, users), users, db
}

func TestRemoveUser_NotFound(t *testing.T) {
	svc, users, _ := newAdminFixture()
	id := uuid.New()
	users.On("DeleteUser", mock.Anything, mock.Anything, id).Return(apperror.New(apperror.KindNotFound, "user not found"))

	err := svc.RemoveUser(context.Background(), id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, "no user with the id "+id.String()+" found", apperror.PublicMessage(err))
}

func TestSetUserActive(t *testing.T) {
	svc, users, db := newAdminFixture()
	id := uuid.New()
	users.On("SetActive", mock.Anything, mock.Anything, id, false).Return(nil)
	users.On("FindByID", mock.Anything, mock.Anything, id).Return(&model.User{UserID: id, IsActive: false}, nil)

	user, err := svc.SetUserActive(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Equal(t, 1, db.Commits)
}

func TestSetUserActive_RollsBack(t *testing.T) {
	id := uuid.New()

	t.Run("repository error", func(t *testing.T) {
		svc, users, db := newAdminFixture()
		users.On("SetActive", mock.Anything, mock.Anything, id, true).
			Return(apperror.New(apperror.KindNotFound, "user not found"))

		_, err := svc.SetUserActive(context.Background(), id, true)
		assert.Error(t, err)
		assert.Equal(t, 1, db.Rollbacks)
		assert.Equal(t, 0, db.Commits)
	})

	t.Run("panic", func(t *testing.T) {
		svc, users, db := newAdminFixture()
		users.On("SetActive", mock.Anything, mock.Anything, id, true).
			Run(func(mock.Arguments) { panic("connection reset") }).
			Return(nil)

		assert.PanicsWithValue(t, "connection reset", func() {
			_, _ = svc.SetUserActive(context.Background(), id, true)
		})
		assert.Equal(t, 1, db.Rollbacks)
		assert.Equal(t, 0, db.Commits)
	})
}

func TestUpdateScopes(t *testing.T) {
	id := uuid.New()

	t.Run("grant planner", func(t *testing.T) {
		svc, users, _ := newAdminFixture()
		users.On("UpdateScopes", mock.Anything, mock.Anything, id, []string{"user", "planner"}).Return(nil)
		users.On("FindByID", mock.Anything, mock.Anything, id).
			Return(&model.User{UserID: id, Scopes: []string{"user", "planner"}}, nil)

		user, err := svc.UpdateScopes(context.Background(), id, []string{"user", "planner", "user"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"user", "planner"}, user.Scopes)
	})

	t.Run("unknown scope", func(t *testing.T) {
		svc, users, _ := newAdminFixture()
		_, err := svc.UpdateScopes(context.Background(), id, []string{"root"})
		assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
		users.AssertNotCalled(t, "UpdateScopes", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty", func(t *testing.T) {
		svc, _, _ := newAdminFixture()
		_, err := svc.UpdateScopes(context.Background(), id, nil)
		assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
	})

	t.Run("missing user rolls back", func(t *testing.T) {
		svc, users, db := newAdminFixture()
		users.On("UpdateScopes", mock.Anything, mock.Anything, id, []string{"user"}).
			Return(apperror.New(apperror.KindNotFound, "user not found"))

		_, err := svc.UpdateScopes(context.Background(), id, []string{"user"})
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		assert.Equal(t, 1, db.Rollbacks)
	})
}

func TestListUsers_Empty(t *testing.T) {
	svc, users, _ := newAdminFixture()
	users.On("ListUsers", mock.Anything, mock.Anything).Return(nil, nil)

	out, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestSeedAdmin(t *testing.T) {
	cfg := &config.AdminConfig{Username: "root", Email: "root@example.com", Password: "Admin123"}

	t.Run("creates missing admin", func(t *testing.T) {
		svc, users, _ := newAdminFixture()
		users.On("FindByUsername", mock.Anything, mock.Anything, "root").Return(nil, apperror.ErrNotFound)
		users.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "root" && u.IsActive &&
				assert.ObjectsAreEqual([]string{"user", "planner", "admin"}, []string(u.Scopes)) &&
				security.CheckPassword("Admin123", u.PasswordHash)
		})).Return(&model.User{}, nil)

		require.NoError(t, svc.SeedAdmin(context.Background(), cfg))
		users.AssertExpectations(t)
	})

	t.Run("existing admin untouched", func(t *testing.T) {
		svc, users, _ := newAdminFixture()
		users.On("FindByUsername", mock.Anything, mock.Anything, "root").Return(&model.User{Username: "root"}, nil)

		require.NoError(t, svc.SeedAdmin(context.Background(), cfg))
		users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not configured", func(t *testing.T) {
		svc, users, _ := newAdminFixture()
		require.NoError(t, svc.SeedAdmin(context.Background(), &config.AdminConfig{}))
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything, mock.Anything)
	})
}
