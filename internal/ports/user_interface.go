package ports

import (
	"context"
	"io"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository : SQL слой пользователей. Отсутствие записи возвращается как apperror.ErrNotFound
type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) (*model.User, error)
	UpdateUsername(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, username string) error
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, passwordHash string) error
	UpdateEmail(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, email string) error
	UpdatePhoneNumber(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, phoneNumber string) error
	UpdateDateOfBirth(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, dateOfBirth time.Time) error
	UpdateProfilePicture(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, pictureURL *string) error
	SetActive(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, active bool) error
	UpdateScopes(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, scopes []string) error
	DeleteUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) error
	ListUsers(ctx context.Context, exec sqlx.ExtContext) ([]*model.User, error)
}

// ParticipationRepository : связь пользователей и поездок
type ParticipationRepository interface {
	IsParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error)
	AddParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) error
	RemoveParticipant(ctx context.Context, exec sqlx.ExtContext, userID, tripID uuid.UUID) (bool, error)
}

// Upload : файл, полученный из multipart формы
type Upload struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ProfileImage : поток изображения профиля из хранилища
type ProfileImage struct {
	Body        io.ReadCloser
	ContentType string
}

type UserService interface {
	SignUp(ctx context.Context, req requestresponse.SignUpRequest) (*model.User, error)
	UpdateUsername(ctx context.Context, user *model.User, username string) error
	UpdatePassword(ctx context.Context, user *model.User, password, confirmPassword string) error
	UpdateEmail(ctx context.Context, user *model.User, email string) error
	UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber string) error
	UpdateDateOfBirth(ctx context.Context, user *model.User, dateOfBirth string) error
	UpdateProfilePicture(ctx context.Context, user *model.User, upload Upload) (string, error)
	DeleteProfilePicture(ctx context.Context, user *model.User) error
	Profile(ctx context.Context, user *model.User) (*requestresponse.ProfileResponse, error)
	ProfileImage(ctx context.Context, user *model.User) (*ProfileImage, error)
	Deactivate(ctx context.Context, user *model.User) error
	Reactivate(ctx context.Context, user *model.User) error
	JoinTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error
	LeaveTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error
}

type AdminService interface {
	RemoveUser(ctx context.Context, userID uuid.UUID) error
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*model.User, error)
	UpdateScopes(ctx context.Context, userID uuid.UUID, scopes []string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}
