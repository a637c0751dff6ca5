package service_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/mocks"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
	"travel-planner/internal/security"
	"travel-planner/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	svc           *service.UserService
	db            *mocks.FakeDB
	users         *mocks.MockUserRepository
	participation *mocks.MockParticipationRepository
	trips         *mocks.MockTripRepository
	storage       *mocks.MockS3Storage
	dispatcher    *mocks.RecordingDispatcher
}

func newUserFixture() *userFixture {
	f := &userFixture{
		db:            &mocks.FakeDB{},
		users:         new(mocks.MockUserRepository),
		participation: new(mocks.MockParticipationRepository),
		trips:         new(mocks.MockTripRepository),
		storage:       new(mocks.MockS3Storage),
		dispatcher:    &mocks.RecordingDispatcher{},
	}
	f.svc = service.NewUserService(f.db, f.users, f.participation, f.trips, f.storage, f.dispatcher, &config.S3Config{
		Bucket:       "travel-images",
		PresignTTL:   "15m",
		MaxImageSize: 1024,
	})
	return f
}

func validSignUp() requestresponse.SignUpRequest {
	return requestresponse.SignUpRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
		Scopes:          []string{"user"},
	}
}

func TestSignUp_Success(t *testing.T) {
	f := newUserFixture()

	f.users.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "alice" &&
			u.IsActive &&
			len(u.Scopes) == 1 && u.Scopes[0] == "user" &&
			security.CheckPassword("Secret1", u.PasswordHash)
	})).Return(&model.User{UserID: uuid.New(), Username: "alice", Email: "alice@example.com"}, nil)

	user, err := f.svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.Len(t, f.dispatcher.Tasks, 1)
	assert.Equal(t, model.TaskSendWelcomeEmail, f.dispatcher.Tasks[0].Name)
	assert.Equal(t, model.WelcomeEmailArgs{Email: "alice@example.com", Username: "alice"}, f.dispatcher.Tasks[0].Args)
}

func TestSignUp_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *requestresponse.SignUpRequest)
	}{
		{"passwords differ", func(r *requestresponse.SignUpRequest) { r.ConfirmPassword = "Secret2" }},
		{"no digit", func(r *requestresponse.SignUpRequest) { r.Password, r.ConfirmPassword = "Secrets", "Secrets" }},
		{"no upper letter", func(r *requestresponse.SignUpRequest) { r.Password, r.ConfirmPassword = "secret1", "secret1" }},
		{"too short", func(r *requestresponse.SignUpRequest) { r.Password, r.ConfirmPassword = "Se1", "Se1" }},
		{"planner scope", func(r *requestresponse.SignUpRequest) { r.Scopes = []string{"planner"} }},
		{"extra scope", func(r *requestresponse.SignUpRequest) { r.Scopes = []string{"user", "admin"} }},
		{"no scopes", func(r *requestresponse.SignUpRequest) { r.Scopes = nil }},
		{"bad email", func(r *requestresponse.SignUpRequest) { r.Email = "alice" }},
		{"long username", func(r *requestresponse.SignUpRequest) { r.Username = strings.Repeat("a", 51) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture()
			req := validSignUp()
			tt.modify(&req)

			_, err := f.svc.SignUp(context.Background(), req)
			assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
			f.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, f.dispatcher.Tasks)
		})
	}
}

func TestSignUp_Duplicate(t *testing.T) {
	f := newUserFixture()
	f.users.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperror.New(apperror.KindConflict, "username or email already exists"))

	_, err := f.svc.SignUp(context.Background(), validSignUp())
	assert.True(t, errors.Is(err, apperror.ErrConflict))
	assert.Empty(t, f.dispatcher.Tasks)
}

func TestSignUp_DispatchFailureDoesNotFail(t *testing.T) {
	f := newUserFixture()
	f.dispatcher.Err = errors.New("broker unavailable")
	f.users.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(&model.User{UserID: uuid.New(), Username: "alice"}, nil)

	_, err := f.svc.SignUp(context.Background(), validSignUp())
	assert.NoError(t, err)
}

func TestUpdateProfilePicture_SameKeyIsOverwritten(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New(), Username: "alice"}
	key := user.UserID.String()
	old := f.storage.ObjectURL(key)
	user.ProfilePicture = &old

	f.users.On("UpdateProfilePicture", mock.Anything, mock.Anything, user.UserID, mock.MatchedBy(func(url *string) bool {
		return url != nil && *url == old
	})).Return(nil)

	url, err := f.svc.UpdateProfilePicture(context.Background(), user, ports.Upload{Filename: "me.png", Body: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, old, url)

	require.Len(t, f.dispatcher.Tasks, 1)
	assert.Equal(t, model.TaskS3Upload, f.dispatcher.Tasks[0].Name)
	assert.Equal(t, model.S3UploadArgs{Key: key, ContentType: "image/png", Body: []byte("png")}, f.dispatcher.Tasks[0].Args)
	f.storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
}

func TestUpdateProfilePicture_RemovesObjectUnderOtherKey(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New(), Username: "alice"}
	old := f.storage.ObjectURL("legacy/alice.png")
	user.ProfilePicture = &old

	f.storage.On("DeleteObject", mock.Anything, "legacy/alice.png").Return(nil)
	f.users.On("UpdateProfilePicture", mock.Anything, mock.Anything, user.UserID, mock.Anything).Return(nil)

	url, err := f.svc.UpdateProfilePicture(context.Background(), user, ports.Upload{Filename: "me.png", Body: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, f.storage.ObjectURL(user.UserID.String()), url)
	f.storage.AssertExpectations(t)
}

func TestUpdateProfilePicture_DispatchFailureKeepsOldPicture(t *testing.T) {
	f := newUserFixture()
	f.svc = service.NewUserService(f.db, f.users, f.participation, f.trips, f.storage, f.dispatcher, &config.S3Config{
		Bucket:       "travel-images",
		PresignTTL:   "15m",
		MaxImageSize: 5 << 20,
	})
	f.dispatcher.Err = errors.New("[10] Message Size Too Large")

	user := &model.User{UserID: uuid.New(), Username: "alice"}
	old := f.storage.ObjectURL("legacy/alice.png")
	user.ProfilePicture = &old

	body := make([]byte, 2<<20)
	_, err := f.svc.UpdateProfilePicture(context.Background(), user, ports.Upload{Filename: "me.png", Body: body})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, apperror.HTTPStatus(err))

	assert.Equal(t, old, *user.ProfilePicture)
	f.storage.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	f.users.AssertNotCalled(t, "UpdateProfilePicture", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfilePicture_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		upload ports.Upload
	}{
		{"double extension", ports.Upload{Filename: "me.php.png", Body: []byte("x")}},
		{"unsupported type", ports.Upload{Filename: "me.gif", Body: []byte("x")}},
		{"too large", ports.Upload{Filename: "me.jpg", Body: make([]byte, 2048)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture()
			_, err := f.svc.UpdateProfilePicture(context.Background(), &model.User{UserID: uuid.New()}, tt.upload)
			assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
			assert.Empty(t, f.dispatcher.Tasks)
		})
	}
}

func TestDeleteProfilePicture(t *testing.T) {
	t.Run("no picture", func(t *testing.T) {
		f := newUserFixture()
		err := f.svc.DeleteProfilePicture(context.Background(), &model.User{UserID: uuid.New()})
		assert.Equal(t, apperror.KindInvalidAccountState, apperror.KindOf(err))
	})

	t.Run("picture removed", func(t *testing.T) {
		f := newUserFixture()
		user := &model.User{UserID: uuid.New()}
		url := f.storage.ObjectURL(user.UserID.String())
		user.ProfilePicture = &url

		f.users.On("UpdateProfilePicture", mock.Anything, mock.Anything, user.UserID, (*string)(nil)).Return(nil)
		f.storage.On("DeleteObject", mock.Anything, user.UserID.String()).Return(nil)

		require.NoError(t, f.svc.DeleteProfilePicture(context.Background(), user))
		assert.Nil(t, user.ProfilePicture)
		f.users.AssertExpectations(t)
		f.storage.AssertExpectations(t)
	})
}

func TestProfile_PresignsPicture(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New(), Username: "alice", Scopes: []string{"user"}}
	url := f.storage.ObjectURL(user.UserID.String())
	user.ProfilePicture = &url

	f.storage.On("GeneratePresignedGetURL", mock.Anything, user.UserID.String(), 15*time.Minute).
		Return("https://signed.example/picture", nil)

	profile, err := f.svc.Profile(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/picture", profile.ProfilePictureURL)
	assert.Equal(t, []string{"user"}, profile.Scopes)
}

func TestProfileImage(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New()}

	_, err := f.svc.ProfileImage(context.Background(), user)
	assert.Equal(t, apperror.KindInvalidAccountState, apperror.KindOf(err))

	url := f.storage.ObjectURL(user.UserID.String())
	user.ProfilePicture = &url
	f.storage.On("GetObject", mock.Anything, user.UserID.String()).
		Return(io.NopCloser(strings.NewReader("png")), "", nil)

	image, err := f.svc.ProfileImage(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", image.ContentType)
}

func TestUpdateDateOfBirth(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New()}

	err := f.svc.UpdateDateOfBirth(context.Background(), user, "2999-01-01")
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	err = f.svc.UpdateDateOfBirth(context.Background(), user, "1850-01-01")
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	f.users.On("UpdateDateOfBirth", mock.Anything, mock.Anything, user.UserID,
		time.Date(1990, 10, 1, 0, 0, 0, 0, time.UTC)).Return(nil)
	assert.NoError(t, f.svc.UpdateDateOfBirth(context.Background(), user, "1990-10-01"))
}

func TestUpdatePhoneNumber(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New()}

	err := f.svc.UpdatePhoneNumber(context.Background(), user, "12345")
	assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))

	f.users.On("UpdatePhoneNumber", mock.Anything, mock.Anything, user.UserID, "+4915112345678").
		Return(apperror.New(apperror.KindConflict, "phone number already exists"))
	err = f.svc.UpdatePhoneNumber(context.Background(), user, "+4915112345678")
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestDeactivateReactivate(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New(), IsActive: true}

	f.users.On("SetActive", mock.Anything, mock.Anything, user.UserID, false).Return(nil).Once()
	require.NoError(t, f.svc.Deactivate(context.Background(), user))
	assert.False(t, user.IsActive)

	err := f.svc.Deactivate(context.Background(), user)
	assert.Equal(t, apperror.KindInvalidAccountState, apperror.KindOf(err))

	f.users.On("SetActive", mock.Anything, mock.Anything, user.UserID, true).Return(nil).Once()
	require.NoError(t, f.svc.Reactivate(context.Background(), user))
	assert.True(t, user.IsActive)

	err = f.svc.Reactivate(context.Background(), user)
	assert.Equal(t, apperror.KindInvalidAccountState, apperror.KindOf(err))
}

func TestJoinTrip(t *testing.T) {
	user := &model.User{UserID: uuid.New(), Username: "alice"}
	tripID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(f *userFixture)
		expectKind    apperror.Kind
		expectErr     bool
		expectCommits int
	}{
		{
			name: "enrolled",
			setupMocks: func(f *userFixture) {
				f.trips.On("TripExists", mock.Anything, mock.Anything, tripID).Return(true, nil)
				f.participation.On("IsParticipant", mock.Anything, mock.Anything, user.UserID, tripID).Return(false, nil)
				f.participation.On("AddParticipant", mock.Anything, mock.Anything, user.UserID, tripID).Return(nil)
			},
			expectCommits: 1,
		},
		{
			name: "trip missing",
			setupMocks: func(f *userFixture) {
				f.trips.On("TripExists", mock.Anything, mock.Anything, tripID).Return(false, nil)
			},
			expectErr:  true,
			expectKind: apperror.KindNotFound,
		},
		{
			name: "already enrolled",
			setupMocks: func(f *userFixture) {
				f.trips.On("TripExists", mock.Anything, mock.Anything, tripID).Return(true, nil)
				f.participation.On("IsParticipant", mock.Anything, mock.Anything, user.UserID, tripID).Return(true, nil)
			},
			expectErr:  true,
			expectKind: apperror.KindInvalidAccountState,
		},
		{
			name: "concurrent enrollment hits primary key",
			setupMocks: func(f *userFixture) {
				f.trips.On("TripExists", mock.Anything, mock.Anything, tripID).Return(true, nil)
				f.participation.On("IsParticipant", mock.Anything, mock.Anything, user.UserID, tripID).Return(false, nil)
				f.participation.On("AddParticipant", mock.Anything, mock.Anything, user.UserID, tripID).
					Return(apperror.New(apperror.KindConflict, "already enrolled in this trip"))
			},
			expectErr:  true,
			expectKind: apperror.KindInvalidAccountState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture()
			tt.setupMocks(f)

			err := f.svc.JoinTrip(context.Background(), user, tripID)
			if tt.expectErr {
				assert.Equal(t, tt.expectKind, apperror.KindOf(err))
				assert.Equal(t, 1, f.db.Rollbacks)
				assert.Equal(t, 0, f.db.Commits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectCommits, f.db.Commits)
		})
	}
}

func TestLeaveTrip_NotEnrolled(t *testing.T) {
	f := newUserFixture()
	user := &model.User{UserID: uuid.New(), Username: "alice"}
	tripID := uuid.New()

	f.trips.On("TripExists", mock.Anything, mock.Anything, tripID).Return(true, nil)
	f.participation.On("RemoveParticipant", mock.Anything, mock.Anything, user.UserID, tripID).Return(false, nil)

	err := f.svc.LeaveTrip(context.Background(), user, tripID)
	assert.Equal(t, apperror.KindInvalidAccountState, apperror.KindOf(err))
	assert.Equal(t, "alice is not enrolled in this trip", apperror.PublicMessage(err))
}
