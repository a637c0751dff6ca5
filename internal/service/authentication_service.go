package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/model"
	"travel-planner/internal/ports"
	"travel-planner/internal/security"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// compareWithDummy : время ответа не зависит от того, найден ли пользователь
func compareWithDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = security.HashPassword("dummy-password")
	})
	security.CheckPassword(password, dummyHash)
}

type AuthenticationService struct {
	db        ports.Database
	users     ports.UserRepository
	tokens    ports.TokenService
	blacklist ports.BlacklistRepository
	cfg       *config.JWTConfig
}

func NewAuthenticationService(
	db ports.Database,
	users ports.UserRepository,
	tokens ports.TokenService,
	blacklist ports.BlacklistRepository,
	cfg *config.JWTConfig,
) *AuthenticationService {
	return &AuthenticationService{
		db:        db,
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		cfg:       cfg,
	}
}

// Login проверяет пароль и запрошенные scopes и выпускает пару токенов.
//
// Запрошенные scopes должны быть непустым подмножеством scopes пользователя.
// В токены по умолчанию попадают все scopes пользователя, а при
// jwt.issue_requested_scopes только запрошенные.
//
// Возвращает:
//   - model.TokensPair
//   - apperror.KindUnauthenticated при любой ошибке учетных данных
func (s *AuthenticationService) Login(ctx context.Context, username, password string, scopes []string) (*model.TokensPair, error) {
	user, err := s.users.FindByUsername(ctx, s.db, username)
	if errors.Is(err, apperror.ErrNotFound) {
		compareWithDummy(password)
		return nil, apperror.New(apperror.KindUnauthenticated, "incorrect username or password")
	}
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.New(apperror.KindUnauthenticated, "incorrect username or password")
	}

	if !security.IsSubset(scopes, user.Scopes) {
		return nil, apperror.New(apperror.KindUnauthenticated, "incorrect scopes")
	}

	granted := []string(user.Scopes)
	if s.cfg != nil && s.cfg.IssueRequestedScopes {
		granted = security.Intersect(scopes, user.Scopes)
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Username, granted)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "[AuthService] ошибка генерации access токена", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.Username, granted)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "[AuthService] ошибка генерации refresh токена", err)
	}

	return &model.TokensPair{
		TokenType:    model.TokenTypeBearer,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh выпускает новый access токен, refresh токен не ротируется
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	switch {
	case errors.Is(err, security.ErrTokenExpired):
		return nil, apperror.Wrap(apperror.KindUnauthenticated, "refresh token expired", err)
	case err != nil:
		return nil, apperror.Wrap(apperror.KindInvalid, "invalid refresh token", err)
	}

	if claims.ID == "" || claims.Subject == "" {
		return nil, apperror.New(apperror.KindInvalid, "invalid refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperror.New(apperror.KindInvalidAccountState, "token has been revoked")
	}

	user, err := s.users.FindByUsername(ctx, s.db, claims.Subject)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.New(apperror.KindInvalid, "user not found")
	}
	if err != nil {
		return nil, err
	}

	if len(security.Intersect(claims.Scopes, user.Scopes)) == 0 {
		return nil, apperror.New(apperror.KindUnauthorized, "not enough permissions")
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Username, user.Scopes)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "[AuthService] ошибка генерации access токена", err)
	}

	return &model.TokensPair{TokenType: model.TokenTypeBearer, AccessToken: accessToken}, nil
}

// Logout заносит jti в blacklist до момента истечения токена. Повторный вызов отклоняется
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return apperror.Wrap(apperror.KindInvalid, "invalid refresh token", err)
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return apperror.New(apperror.KindInvalid, "invalid refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return apperror.New(apperror.KindInvalidAccountState, "token already blacklisted")
	}

	ttl := claims.ExpiresAt.Time.Sub(s.tokens.Now())
	if ttl < time.Second {
		ttl = time.Second
	}

	return s.blacklist.Blacklist(ctx, claims.ID, ttl)
}
