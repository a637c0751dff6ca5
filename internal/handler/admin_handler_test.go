package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-planner/internal/apperror"
	"travel-planner/internal/handler"
	"travel-planner/internal/mocks"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveUser(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	userID := uuid.New()
	admin.On("RemoveUser", mock.Anything, userID).Return(nil).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/admin/remove/"+userID.String(), nil), "user_id", userID.String())
	rec := httptest.NewRecorder()
	h.RemoveUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user removed successfully", decodeMessage(t, rec))
}

func TestRemoveUser_NotFound(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	userID := uuid.New()
	admin.On("RemoveUser", mock.Anything, userID).
		Return(apperror.New(apperror.KindNotFound, "no user with the id "+userID.String()+" found")).Once()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/admin/remove/"+userID.String(), nil), "user_id", userID.String())
	rec := httptest.NewRecorder()
	h.RemoveUser(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserStatus(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	userID := uuid.New()
	active := false
	admin.On("SetUserActive", mock.Anything, userID, false).
		Return(&model.User{UserID: userID, Username: "bob", IsActive: false}, nil).Once()

	req := withURLParam(jsonRequest(t, http.MethodPut, "/v1/admin/update/"+userID.String(),
		requestresponse.UpdateUserStatusRequest{IsActive: &active}), "user_id", userID.String())
	rec := httptest.NewRecorder()
	h.UpdateUserStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_active":false`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUpdateUserStatus_MissingField(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	userID := uuid.New()

	req := withURLParam(jsonRequest(t, http.MethodPut, "/v1/admin/update/"+userID.String(), map[string]any{}), "user_id", userID.String())
	rec := httptest.NewRecorder()
	h.UpdateUserStatus(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is_active is required", decodeError(t, rec).Error.Text)
	admin.AssertNotCalled(t, "SetUserActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateScopes_Unknown(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	userID := uuid.New()
	admin.On("UpdateScopes", mock.Anything, userID, []string{"root"}).
		Return(nil, apperror.New(apperror.KindInvalid, "unknown scope: root")).Once()

	req := withURLParam(jsonRequest(t, http.MethodPut, "/v1/admin/scopes/"+userID.String(),
		requestresponse.UpdateScopesRequest{Scopes: []string{"root"}}), "user_id", userID.String())
	rec := httptest.NewRecorder()
	h.UpdateScopes(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown scope: root", decodeError(t, rec).Error.Text)
}

func TestListUsers(t *testing.T) {
	admin := &mocks.MockAdminService{}
	h := handler.NewAdminHandler(admin)
	admin.On("ListUsers", mock.Anything).Return([]*model.User{{Username: "alice"}, {Username: "bob"}}, nil).Once()

	rec := httptest.NewRecorder()
	h.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/all-users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"username":"bob"`)
}
