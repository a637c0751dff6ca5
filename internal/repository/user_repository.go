package repository

import (
	"context"
	"time"

	"travel-planner/config"
	"travel-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = `user_id, username, password, email, is_active, phone_number, date_of_birth, profile_picture, scopes, created_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (user_id, username, password, email, is_active, scopes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
	`

	created := *user
	err := exec.QueryRowxContext(ctx, query,
		user.UserID, user.Username, user.PasswordHash, user.Email, user.IsActive, pq.StringArray(user.Scopes),
	).Scan(&created.CreatedAt)
	if err != nil {
		return nil, translateError("[UserRepo] ошибка вставки пользователя", "user not found", err)
	}

	return &created, nil
}

// FindByUsername : ищет пользователя по username
func (r *UserRepository) FindByUsername(ctx context.Context, exec sqlx.ExtContext, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, username); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя по username", "user not found", err)
	}
	return &user, nil
}

// FindByID : ищет пользователя по user_id
func (r *UserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var user model.User
	if err := sqlx.GetContext(ctx, exec, &user, query, userID); err != nil {
		return nil, translateError("[UserRepo] не удалось найти пользователя", "user not found", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUsername(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, username string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить username",
		`UPDATE users SET username = $2 WHERE user_id = $1`, userID, username)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, passwordHash string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить пароль",
		`UPDATE users SET password = $2 WHERE user_id = $1`, userID, passwordHash)
}

func (r *UserRepository) UpdateEmail(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, email string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить email",
		`UPDATE users SET email = $2 WHERE user_id = $1`, userID, email)
}

func (r *UserRepository) UpdatePhoneNumber(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, phoneNumber string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить телефон",
		`UPDATE users SET phone_number = $2 WHERE user_id = $1`, userID, phoneNumber)
}

func (r *UserRepository) UpdateDateOfBirth(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, dateOfBirth time.Time) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить дату рождения",
		`UPDATE users SET date_of_birth = $2 WHERE user_id = $1`, userID, dateOfBirth)
}

// UpdateProfilePicture : nil очищает фото профиля
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, pictureURL *string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить фото профиля",
		`UPDATE users SET profile_picture = $2 WHERE user_id = $1`, userID, pictureURL)
}

func (r *UserRepository) SetActive(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, active bool) error {
	return r.update(ctx, exec, "[UserRepo] не удалось изменить статус",
		`UPDATE users SET is_active = $2 WHERE user_id = $1`, userID, active)
}

func (r *UserRepository) UpdateScopes(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID, scopes []string) error {
	return r.update(ctx, exec, "[UserRepo] не удалось обновить scopes",
		`UPDATE users SET scopes = $2 WHERE user_id = $1`, userID, pq.StringArray(scopes))
}

// DeleteUser : участие в поездках удаляется каскадно
func (r *UserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, userID uuid.UUID) error {
	return r.update(ctx, exec, "[UserRepo] не удалось удалить пользователя",
		`DELETE FROM users WHERE user_id = $1`, userID)
}

func (r *UserRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext) ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, user_id ASC`
	var users []*model.User
	if err := sqlx.SelectContext(ctx, exec, &users, query); err != nil {
		return nil, translateError("[UserRepo] не удалось получить список пользователей", "user not found", err)
	}
	return users, nil
}

func (r *UserRepository) update(ctx context.Context, exec sqlx.ExtContext, message, query string, args ...interface{}) error {
	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(message, "user not found", err)
	}
	return requireAffected(result, message, "user not found")
}
