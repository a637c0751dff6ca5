package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/model"
	"travel-planner/internal/model/requestresponse"
	"travel-planner/internal/ports"
	"travel-planner/internal/security"
	"travel-planner/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserService struct {
	db            ports.Database
	users         ports.UserRepository
	participation ports.ParticipationRepository
	trips         ports.TripRepository
	storage       ports.S3Storage
	dispatcher    ports.TaskDispatcher
	s3cfg         *config.S3Config
	now           func() time.Time
}

func NewUserService(
	db ports.Database,
	users ports.UserRepository,
	participation ports.ParticipationRepository,
	trips ports.TripRepository,
	storage ports.S3Storage,
	dispatcher ports.TaskDispatcher,
	s3cfg *config.S3Config,
) *UserService {
	return &UserService{
		db:            db,
		users:         users,
		participation: participation,
		trips:         trips,
		storage:       storage,
		dispatcher:    dispatcher,
		s3cfg:         s3cfg,
		now:           time.Now,
	}
}

// SignUp создает активного пользователя со scope user и ставит в очередь приветственное письмо
func (s *UserService) SignUp(ctx context.Context, req requestresponse.SignUpRequest) (*model.User, error) {
	if err := util.ValidateUsername(req.Username); err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if err := util.ValidateEmail(req.Email); err != nil {
		return nil, apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if err := validateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}
	if !slices.Equal(req.Scopes, []string{model.ScopeUser}) {
		return nil, apperror.New(apperror.KindInvalid, `scopes must be ["user"]`)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "[UserService] не удалось создать хэш пароля", err)
	}

	created, err := s.users.CreateUser(ctx, s.db, &model.User{
		UserID:       uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		IsActive:     true,
		Scopes:       pq.StringArray{model.ScopeUser},
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, model.TaskSendWelcomeEmail, model.WelcomeEmailArgs{
		Email:    created.Email,
		Username: created.Username,
	})

	return created, nil
}

func (s *UserService) UpdateUsername(ctx context.Context, user *model.User, username string) error {
	if err := util.ValidateUsername(username); err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if err := s.users.UpdateUsername(ctx, s.db, user.UserID, username); err != nil {
		return err
	}
	user.Username = username
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, user *model.User, password, confirmPassword string) error {
	if err := validateNewPassword(password, confirmPassword); err != nil {
		return err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "[UserService] не удалось создать хэш пароля", err)
	}
	return s.users.UpdatePassword(ctx, s.db, user.UserID, hash)
}

func (s *UserService) UpdateEmail(ctx context.Context, user *model.User, email string) error {
	if err := util.ValidateEmail(email); err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if err := s.users.UpdateEmail(ctx, s.db, user.UserID, email); err != nil {
		return err
	}
	user.Email = email
	return nil
}

func (s *UserService) UpdatePhoneNumber(ctx context.Context, user *model.User, phoneNumber string) error {
	if err := util.ValidatePhoneNumber(phoneNumber); err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	return s.users.UpdatePhoneNumber(ctx, s.db, user.UserID, phoneNumber)
}

func (s *UserService) UpdateDateOfBirth(ctx context.Context, user *model.User, dateOfBirth string) error {
	date, err := util.ParseDateOfBirth(dateOfBirth, s.now())
	if err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	return s.users.UpdateDateOfBirth(ctx, s.db, user.UserID, date)
}

// UpdateProfilePicture : ключ объекта равен user_id, загрузка выполняется воркером.
// Если задача не принята очередью, старое фото и ссылка на него остаются
func (s *UserService) UpdateProfilePicture(ctx context.Context, user *model.User, upload ports.Upload) (string, error) {
	if err := validateImage(upload, s.s3cfg.MaxImageSize); err != nil {
		return "", err
	}

	key := user.UserID.String()
	err := s.dispatcher.Dispatch(ctx, model.TaskS3Upload, model.S3UploadArgs{
		Key:         key,
		ContentType: util.ContentType(upload.Filename),
		Body:        upload.Body,
	})
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "image upload failed",
			util.LogError("[UserService] не удалось поставить загрузку фото в очередь", err))
	}

	// объект с тем же ключом перезапишет воркер
	if user.ProfilePicture != nil {
		if oldKey := s.storage.KeyFromURL(*user.ProfilePicture); oldKey != key {
			if err := s.storage.DeleteObject(ctx, oldKey); err != nil {
				slog.Error("[UserService] не удалось удалить старое фото профиля", "key", oldKey, "error", err)
			}
		}
	}

	pictureURL := s.storage.ObjectURL(key)
	if err := s.users.UpdateProfilePicture(ctx, s.db, user.UserID, &pictureURL); err != nil {
		return "", err
	}
	user.ProfilePicture = &pictureURL
	return pictureURL, nil
}

func (s *UserService) DeleteProfilePicture(ctx context.Context, user *model.User) error {
	if user.ProfilePicture == nil {
		return apperror.New(apperror.KindInvalidAccountState, "no user profile picture found")
	}
	if err := s.users.UpdateProfilePicture(ctx, s.db, user.UserID, nil); err != nil {
		return err
	}
	key := s.storage.KeyFromURL(*user.ProfilePicture)
	user.ProfilePicture = nil
	return s.storage.DeleteObject(ctx, key)
}

func (s *UserService) Profile(ctx context.Context, user *model.User) (*requestresponse.ProfileResponse, error) {
	profile := &requestresponse.ProfileResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		IsActive:    user.IsActive,
		PhoneNumber: user.PhoneNumber,
		DateOfBirth: user.DateOfBirth,
		Scopes:      user.Scopes,
	}

	if user.ProfilePicture != nil {
		url, err := s.storage.GeneratePresignedGetURL(ctx, s.storage.KeyFromURL(*user.ProfilePicture), s.s3cfg.PresignExpiry())
		if err != nil {
			return nil, err
		}
		profile.ProfilePictureURL = url
	}
	return profile, nil
}

func (s *UserService) ProfileImage(ctx context.Context, user *model.User) (*ports.ProfileImage, error) {
	if user.ProfilePicture == nil {
		return nil, apperror.New(apperror.KindInvalidAccountState, "user has no profile image")
	}
	body, contentType, err := s.storage.GetObject(ctx, s.storage.KeyFromURL(*user.ProfilePicture))
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &ports.ProfileImage{Body: body, ContentType: contentType}, nil
}

func (s *UserService) Deactivate(ctx context.Context, user *model.User) error {
	if !user.IsActive {
		return apperror.New(apperror.KindInvalidAccountState, "your account is already inactive")
	}
	if err := s.users.SetActive(ctx, s.db, user.UserID, false); err != nil {
		return err
	}
	user.IsActive = false
	return nil
}

func (s *UserService) Reactivate(ctx context.Context, user *model.User) error {
	if user.IsActive {
		return apperror.New(apperror.KindInvalidAccountState, "your account is already active")
	}
	if err := s.users.SetActive(ctx, s.db, user.UserID, true); err != nil {
		return err
	}
	user.IsActive = true
	return nil
}

// JoinTrip : проверка поездки и запись участия выполняются в одной транзакции
func (s *UserService) JoinTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error {
	return s.inTransaction(ctx, func(exec sqlx.ExtContext) error {
		if err := s.requireTrip(ctx, exec, tripID); err != nil {
			return err
		}

		enrolled, err := s.participation.IsParticipant(ctx, exec, user.UserID, tripID)
		if err != nil {
			return err
		}
		if enrolled {
			return apperror.New(apperror.KindInvalidAccountState, user.Username+" is already enrolled in this trip")
		}

		err = s.participation.AddParticipant(ctx, exec, user.UserID, tripID)
		if errors.Is(err, apperror.ErrConflict) {
			return apperror.Wrap(apperror.KindInvalidAccountState, user.Username+" is already enrolled in this trip", err)
		}
		return err
	})
}

func (s *UserService) LeaveTrip(ctx context.Context, user *model.User, tripID uuid.UUID) error {
	return s.inTransaction(ctx, func(exec sqlx.ExtContext) error {
		if err := s.requireTrip(ctx, exec, tripID); err != nil {
			return err
		}

		removed, err := s.participation.RemoveParticipant(ctx, exec, user.UserID, tripID)
		if err != nil {
			return err
		}
		if !removed {
			return apperror.New(apperror.KindInvalidAccountState, user.Username+" is not enrolled in this trip")
		}
		return nil
	})
}

func (s *UserService) requireTrip(ctx context.Context, exec sqlx.ExtContext, tripID uuid.UUID) error {
	exists, err := s.trips.TripExists(ctx, exec, tripID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.New(apperror.KindNotFound, "no trip with id "+tripID.String()+" found")
	}
	return nil
}

func (s *UserService) inTransaction(ctx context.Context, fn func(exec sqlx.ExtContext) error) error {
	return runInTransaction(ctx, s.db, fn)
}

func (s *UserService) dispatch(ctx context.Context, name string, args any) {
	if err := s.dispatcher.Dispatch(ctx, name, args); err != nil {
		slog.Error("[UserService] не удалось поставить задачу в очередь", "task", name, "error", err)
	}
}

func validateNewPassword(password, confirmPassword string) error {
	if err := util.ValidatePassword(password); err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if password != confirmPassword {
		return apperror.New(apperror.KindInvalid, "passwords do not match")
	}
	return nil
}

func validateImage(upload ports.Upload, maxSize int64) error {
	if err := util.ValidateImageName(upload.Filename); err != nil {
		return apperror.Wrap(apperror.KindInvalid, err.Error(), err)
	}
	if maxSize > 0 && int64(len(upload.Body)) > maxSize {
		return apperror.New(apperror.KindInvalid, "image is too large")
	}
	if len(upload.Body) == 0 {
		return apperror.New(apperror.KindInvalid, "image is empty")
	}
	return nil
}
