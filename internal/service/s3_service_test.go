package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-planner/config"
	"travel-planner/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

// fakeS3 : минимальный S3 совместимый сервер, отвечает 200 и запоминает запросы
func fakeS3(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	var mu sync.Mutex
	var requests []recordedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		mu.Unlock()

		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func newLocalS3(t *testing.T, endpoint string) *service.S3Service {
	t.Helper()
	svc, err := service.NewS3Service(context.Background(), &config.S3Config{
		Bucket:   "travel-images",
		Region:   "eu-central-1",
		Endpoint: endpoint,
		Local:    true,
	})
	require.NoError(t, err)
	return svc
}

func TestS3Service_ObjectURLRoundTrip(t *testing.T) {
	srv, _ := fakeS3(t)
	svc := newLocalS3(t, srv.URL)

	url := svc.ObjectURL("user-1")
	assert.Equal(t, srv.URL+"/travel-images/user-1", url)
	assert.Equal(t, "user-1", svc.KeyFromURL(url))
}

func TestS3Service_PutAndGet(t *testing.T) {
	srv, requests := fakeS3(t)
	svc := newLocalS3(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, svc.PutObject(ctx, "user-1/photo.png", "image/png", []byte("png-bytes")))

	body, contentType, err := svc.GetObject(ctx, "user-1/photo.png")
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	var put *recordedRequest
	for _, r := range requests() {
		if r.Method == http.MethodPut {
			r := r
			put = &r
		}
	}
	require.NotNil(t, put)
	assert.Equal(t, "/travel-images/user-1/photo.png", put.Path)
	assert.Equal(t, "image/png", put.ContentType)
}

func TestS3Service_PresignedURL(t *testing.T) {
	srv, _ := fakeS3(t)
	svc := newLocalS3(t, srv.URL)

	url, err := svc.GeneratePresignedGetURL(context.Background(), "user-1", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, srv.URL+"/travel-images/user-1?"))
	assert.Contains(t, url, "X-Amz-Expires=900")
}
