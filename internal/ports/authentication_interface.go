package ports

import (
	"context"
	"time"

	"travel-planner/internal/model"
)

// TokenService : выпуск и проверка JWT
type TokenService interface {
	IssueAccessToken(subject string, scopes []string) (string, error)
	IssueRefreshToken(subject string, scopes []string) (string, error)
	ParseAccessToken(token string) (*model.TokenClaims, error)
	ParseRefreshToken(token string) (*model.TokenClaims, error)
	Now() time.Time
}

// BlacklistRepository : Redis слой отозванных refresh токенов
type BlacklistRepository interface {
	Blacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

type AuthenticationService interface {
	Login(ctx context.Context, username, password string, scopes []string) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string) error
}
