package mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	return m.Called(ctx, key, contentType, body).Error(0)
}

func (m *MockS3Storage) GetObject(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if body, ok := args.Get(0).(io.ReadCloser); ok {
		return body, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

// ObjectURL и KeyFromURL детерминированы и не требуют ожиданий
func (m *MockS3Storage) ObjectURL(key string) string {
	return "https://travel-images.s3.eu-central-1.amazonaws.com/" + key
}

func (m *MockS3Storage) KeyFromURL(url string) string {
	const prefix = "https://travel-images.s3.eu-central-1.amazonaws.com/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):]
	}
	return url
}

// DispatchedTask : задача, записанная RecordingDispatcher
type DispatchedTask struct {
	Name string
	Args any
}

// RecordingDispatcher запоминает отправленные задачи
type RecordingDispatcher struct {
	mu    sync.Mutex
	Tasks []DispatchedTask
	Err   error
}

func (d *RecordingDispatcher) Dispatch(ctx context.Context, name string, args any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Tasks = append(d.Tasks, DispatchedTask{Name: name, Args: args})
	return d.Err
}

func (d *RecordingDispatcher) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		names = append(names, t.Name)
	}
	return names
}
