package security

import (
	"errors"
	"fmt"
	"time"

	"travel-planner/config"
	"travel-planner/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("токен просрочен")
	ErrTokenInvalid = errors.New("невалидный токен")
)

type tokenClass struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// TokenService : выпускает access и refresh токены на разных секретах
type TokenService struct {
	access  tokenClass
	refresh tokenClass
	now     func() time.Time
}

type Option func(*TokenService)

// WithClock подменяет источник времени, используется в тестах
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(cfg *config.JWTConfig, opts ...Option) (*TokenService, error) {
	accessMethod := jwt.GetSigningMethod(cfg.AccessAlgorithm)
	refreshMethod := jwt.GetSigningMethod(cfg.RefreshAlgorithm)
	if accessMethod == nil || refreshMethod == nil {
		return nil, fmt.Errorf("неизвестный алгоритм подписи: %s/%s", cfg.AccessAlgorithm, cfg.RefreshAlgorithm)
	}

	s := &TokenService{
		access:  tokenClass{secret: []byte(cfg.AccessSecret), method: accessMethod, ttl: cfg.AccessTTL()},
		refresh: tokenClass{secret: []byte(cfg.RefreshSecret), method: refreshMethod, ttl: cfg.RefreshTTL()},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TokenService) Now() time.Time {
	return s.now()
}

// IssueAccessToken : {sub, scopes, exp}
func (s *TokenService) IssueAccessToken(subject string, scopes []string) (string, error) {
	claims := model.TokenClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.access.ttl)),
		},
	}
	return s.sign(s.access, claims)
}

// IssueRefreshToken : {sub, scopes, exp, jti}, jti служит ключом отзыва
func (s *TokenService) IssueRefreshToken(subject string, scopes []string) (string, error) {
	claims := model.TokenClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.refresh.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return s.sign(s.refresh, claims)
}

func (s *TokenService) ParseAccessToken(token string) (*model.TokenClaims, error) {
	return s.parse(s.access, token)
}

func (s *TokenService) ParseRefreshToken(token string) (*model.TokenClaims, error) {
	return s.parse(s.refresh, token)
}

func (s *TokenService) sign(class tokenClass, claims model.TokenClaims) (string, error) {
	signed, err := jwt.NewWithClaims(class.method, claims).SignedString(class.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

func (s *TokenService) parse(class tokenClass, token string) (*model.TokenClaims, error) {
	claims := &model.TokenClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return class.secret, nil
	},
		jwt.WithValidMethods([]string{class.method.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	case !parsed.Valid:
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
