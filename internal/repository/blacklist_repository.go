package repository

import (
	"context"
	"fmt"
	"time"

	"travel-planner/config"
	"travel-planner/internal/apperror"
	"travel-planner/internal/util"
)

// BlacklistRepository : отозванные refresh токены хранятся в Redis до истечения их срока
type BlacklistRepository struct {
	client *config.RedisClient
}

func NewBlacklistRepository(rdb *config.RedisClient) *BlacklistRepository {
	return &BlacklistRepository{client: rdb}
}

func (r *BlacklistRepository) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl < time.Second {
		ttl = time.Second
	}

	cmd := r.client.Client.SetEx(ctx, r.key(jti), "true", ttl)
	if err := cmd.Err(); err != nil {
		return apperror.Wrap(apperror.KindInternal, "blacklist write failed", util.LogError("ошибка сохранения в Redis", err))
	}
	if cmd.Val() != "OK" {
		return apperror.New(apperror.KindInternal, fmt.Sprintf("неожиданный ответ Redis: %s", cmd.Val()))
	}
	return nil
}

func (r *BlacklistRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, apperror.Wrap(apperror.KindInternal, "blacklist read failed", util.LogError("ошибка чтения из Redis", err))
	}
	return n > 0, nil
}

func (r *BlacklistRepository) key(jti string) string {
	return fmt.Sprintf("blacklist:%s", jti)
}
