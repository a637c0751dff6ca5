package ports

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// S3Storage : для S3
type S3Storage interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, string, error)
	DeleteObject(ctx context.Context, key string) error
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
	ObjectURL(key string) string
	KeyFromURL(url string) string
}

// TaskDispatcher : отправка фоновой задачи в очередь, результат не ожидается
type TaskDispatcher interface {
	Dispatch(ctx context.Context, name string, args any) error
}

// TaskHandler : обработчик задачи в воркере
type TaskHandler func(ctx context.Context, args json.RawMessage) error
