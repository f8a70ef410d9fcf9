package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPImageUploader_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-key", r.FormValue("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"url": "https://img.example.com/abc.png"},
		})
	}))
	defer server.Close()

	uploader := NewHTTPImageUploader(server.URL, testLogger())

	url, err := uploader.Upload(context.Background(), "test-key", "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/abc.png", url)
}

func TestHTTPImageUploader_MissingKey(t *testing.T) {
	uploader := NewHTTPImageUploader("http://127.0.0.1:1", testLogger())

	_, err := uploader.Upload(context.Background(), "", "photo.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, model.ErrAPIKeyMissing)
}

func TestHTTPImageUploader_HostFailure(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		uploader := NewHTTPImageUploader(server.URL, testLogger())
		_, err := uploader.Upload(context.Background(), "k", "photo.png", strings.NewReader("x"))
		assert.ErrorIs(t, err, model.ErrUpstream)
	})

	t.Run("success=false in body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
		}))
		defer server.Close()

		uploader := NewHTTPImageUploader(server.URL, testLogger())
		_, err := uploader.Upload(context.Background(), "k", "photo.png", strings.NewReader("x"))
		assert.ErrorIs(t, err, model.ErrUpstream)
	})
}
