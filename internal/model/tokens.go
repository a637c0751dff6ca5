package model

import "github.com/golang-jwt/jwt/v5"

const TokenTypeBearer = "bearer"

// TokenClaims : полезная нагрузка access {sub, scopes, exp} и refresh {sub, scopes, exp, jti}
type TokenClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	TokenType string `json:"token_type" example:"bearer"`

	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен, используется для получения нового access токена
	RefreshToken string `json:"refresh_token,omitempty"`
}
