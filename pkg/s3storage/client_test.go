package s3storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/imgcli/pkg/config"
)

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		local  string
		want   string
	}{
		{"", filepath.Join("a", "b", "cat_small.png"), "cat_small.png"},
		{"resized/", filepath.Join("a", "cat_small.png"), "resized/cat_small.png"},
		{"resized", "cat_large.png", "resized/cat_large.png"},
		{"x/y/", "cat.png", "x/y/cat.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectKey(tt.prefix, tt.local))
		})
	}
}

func TestUploadedObject_URI(t *testing.T) {
	o := UploadedObject{Bucket: "images", Key: "resized/cat_small.png"}
	assert.Equal(t, "s3://images/resized/cat_small.png", o.URI())
}

// fakeS3 принимает PUT и запоминает путь и Content-Type.
type fakeS3 struct {
	mu          sync.Mutex
	method      string
	path        string
	contentType string
	bodyLen     int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.method = r.Method
	f.path = r.URL.Path
	f.contentType = r.Header.Get("Content-Type")
	f.bodyLen = len(body)
	f.mu.Unlock()

	w.Header().Set("ETag", `"0123456789abcdef"`)
	w.WriteHeader(http.StatusOK)
}

func TestClient_Upload(t *testing.T) {
	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	local := filepath.Join(t.TempDir(), "cat_small.png")
	require.NoError(t, os.WriteFile(local, []byte("\x89PNG fake payload"), 0o644))

	c, err := New(config.S3Config{
		Endpoint:  strings.TrimPrefix(srv.URL, "http://"),
		Region:    "us-east-1",
		Bucket:    "images",
		Prefix:    "resized/",
		AccessKey: "minio",
		SecretKey: "minio123",
	})
	require.NoError(t, err)

	obj, err := c.Upload(context.Background(), local)
	require.NoError(t, err)

	assert.Equal(t, "images", obj.Bucket)
	assert.Equal(t, "resized/cat_small.png", obj.Key)
	assert.Equal(t, "0123456789abcdef", obj.ETag)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, http.MethodPut, fake.method)
	assert.Equal(t, "/images/resized/cat_small.png", fake.path)
	assert.Equal(t, "image/png", fake.contentType)
	assert.NotZero(t, fake.bodyLen)
}

func TestClient_Upload_MissingFile(t *testing.T) {
	c, err := New(config.S3Config{Endpoint: "127.0.0.1:1", Region: "us-east-1", Bucket: "images"})
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload")
}
