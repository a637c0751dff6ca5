package service

import (
	"context"
	"errors"
	"log/slog"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/model"
	"travel-planner/internal/ports"
	"travel-planner/internal/security"
	"travel-planner/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type AdminService struct {
	db    ports.Database
	users ports.UserRepository
}

func NewAdminService(db ports.Database, users ports.UserRepository) *AdminService {
	return &AdminService{db: db, users: users}
}

func (s *AdminService) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	err := s.users.DeleteUser(ctx, s.db, userID)
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.New(apperror.KindNotFound, "no user with the id "+userID.String()+" found")
	}
	return err
}

func (s *AdminService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*model.User, error) {
	var user *model.User
	err := runInTransaction(ctx, s.db, func(exec sqlx.ExtContext) error {
		if err := s.users.SetActive(ctx, exec, userID, active); err != nil {
			return err
		}
		var err error
		user, err = s.users.FindByID(ctx, exec, userID)
		return err
	})
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "no user with the id "+userID.String()+" found")
	}
	return user, err
}

// UpdateScopes : набор scopes заменяется целиком, пустой и неизвестные отклоняются
func (s *AdminService) UpdateScopes(ctx context.Context, userID uuid.UUID, scopes []string) (*model.User, error) {
	if len(scopes) == 0 {
		return nil, apperror.New(apperror.KindInvalid, "scopes must not be empty")
	}
	if !security.IsSubset(scopes, model.KnownScopes) {
		return nil, apperror.New(apperror.KindInvalid, "unknown scope")
	}
	normalized := security.Intersect(scopes, scopes)

	var user *model.User
	err := runInTransaction(ctx, s.db, func(exec sqlx.ExtContext) error {
		if err := s.users.UpdateScopes(ctx, exec, userID, normalized); err != nil {
			return err
		}
		var err error
		user, err = s.users.FindByID(ctx, exec, userID)
		return err
	})
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "no user with the id "+userID.String()+" found")
	}
	return user, err
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.users.ListUsers(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*model.User{}
	}
	return users, nil
}

// SeedAdmin создает администратора из конфигурации, если его еще нет
func (s *AdminService) SeedAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	if cfg == nil || cfg.Username == "" {
		return nil
	}

	_, err := s.users.FindByUsername(ctx, s.db, cfg.Username)
	if err == nil {
		slog.Info("[AdminService] администратор уже существует", "username", cfg.Username)
		return nil
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	if err := util.ValidatePassword(cfg.Password); err != nil {
		return apperror.Wrap(apperror.KindInvalid, "admin password: "+err.Error(), err)
	}
	hash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return apperror.Wrap(apperror.KindInternal, "[AdminService] не удалось создать хэш пароля", err)
	}

	_, err = s.users.CreateUser(ctx, s.db, &model.User{
		UserID:       uuid.New(),
		Username:     cfg.Username,
		PasswordHash: hash,
		Email:        cfg.Email,
		IsActive:     true,
		Scopes:       append(pq.StringArray{}, model.KnownScopes...),
	})
	if err != nil {
		return err
	}

	slog.Info("[AdminService] администратор создан", "username", cfg.Username)
	return nil
}
