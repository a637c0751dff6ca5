package security

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"travel-planner/internal/apperror"
	"travel-planner/internal/logging"
	"travel-planner/internal/model"
	"travel-planner/internal/ports"
	"travel-planner/internal/util"

	"github.com/jmoiron/sqlx"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Authorizer : проверка bearer токена и уровней доступа маршрута
type Authorizer struct {
	tokens ports.TokenService
	users  ports.UserRepository
	db     sqlx.ExtContext
}

func NewAuthorizer(tokens ports.TokenService, users ports.UserRepository, db sqlx.ExtContext) *Authorizer {
	return &Authorizer{tokens: tokens, users: users, db: db}
}

// RequireScopes пропускает запрос, если пересечение scopes токена, scopes пользователя в БД
// и scopes маршрута не пусто. Пользователь перечитывается из БД на каждый запрос.
func (a *Authorizer) RequireScopes(scopes ...string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf(`Bearer scope="%s"`, strings.Join(scopes, " "))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logging.FromContext(r.Context())

			unauthorized := func(message string) {
				w.Header().Set("WWW-Authenticate", challenge)
				util.HandleError(w, message, http.StatusUnauthorized)
			}

			authorizationHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				unauthorized(apperror.ErrUnauthenticated.Message)
				return
			}
			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := a.tokens.ParseAccessToken(token)
			if err != nil {
				log.Debug("невалидный access токен", "error", err)
				unauthorized(apperror.ErrUnauthenticated.Message)
				return
			}
			if claims.Subject == "" {
				unauthorized(apperror.ErrUnauthenticated.Message)
				return
			}

			user, err := a.users.FindByUsername(r.Context(), a.db, claims.Subject)
			if errors.Is(err, apperror.ErrNotFound) {
				unauthorized(apperror.ErrUnauthenticated.Message)
				return
			}
			if err != nil {
				log.Error("ошибка поиска пользователя по токену", "error", err)
				util.HandleError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if len(Intersect(claims.Scopes, user.Scopes, scopes)) == 0 {
				unauthorized(apperror.ErrUnauthorized.Message)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserContextKey, user)))
		})
	}
}

// RequireActive : отдельная проверка флага is_active, статус 400 вместо 401
func RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		if err != nil {
			util.HandleError(w, apperror.ErrUnauthenticated.Message, http.StatusUnauthorized)
			return
		}
		if !user.IsActive {
			util.HandleError(w, "inactive user", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, apperror.New(apperror.KindUnauthenticated, "пользователь не авторизован")
	}
	return user, nil
}

// WithUser кладет пользователя в контекст, используется в тестах обработчиков
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
