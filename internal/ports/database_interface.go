package ports

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Database : пул соединений и открытие транзакций
type Database interface {
	sqlx.ExtContext
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}
