package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"https://api.ed-fi.org/v7.2/api/metadata/data/v3/resources/swagger.json", true},
		{"http://localhost:8080/spec.yaml", true},
		{"/path/to/spec.json", false},
		{"spec.json", false},
		{"file:///path/to/spec.json", false},
		{"https://", false},
		{`C:\specs\spec.json`, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.location))
		})
	}
}

func TestFileLoader_Load_LocalFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "spec.json")
	content := []byte(`{"openapi": "3.0.0"}`)
	require.NoError(t, os.WriteFile(testFile, content, 0644))

	data, err := NewFileLoader().Load(context.Background(), testFile)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	_, err := NewFileLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)

	var notFound *ErrFileNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestFileLoader_Load_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader().Load(ctx, "test.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_Load_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("openapi: 3.0.0")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "spec.yaml"), content, 0644))

	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(oldDir)

	data, err := NewFileLoader().Load(context.Background(), "spec.yaml")
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFileLoader_Load_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"openapi": "3.0.0"}`))
	}))
	defer server.Close()

	data, err := NewFileLoader().Load(context.Background(), server.URL+"/spec.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi": "3.0.0"}`, string(data))
}

func TestFileLoader_Load_HTTPStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "non-authoritative", status: http.StatusNonAuthoritativeInfo},
		{name: "not found", status: http.StatusNotFound, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("{}"))
			}))
			defer server.Close()

			_, err := NewFileLoader().Load(context.Background(), server.URL)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var statusErr *ErrHTTPStatus
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestFileLoader_Load_HTTPTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewFileLoaderWithTimeout(50*time.Millisecond).Load(context.Background(), server.URL)
	assert.Error(t, err)
}
