// Package storage holds the client for the external image-hosting service.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// ImageUploader uploads a file to the image host and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, apiKey, filename string, file io.Reader) (string, error)
}

// HTTPImageUploader talks to an imgbb-style upload endpoint: multipart POST,
// key as a form value, JSON response carrying the hosted URL.
type HTTPImageUploader struct {
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHTTPImageUploader(endpoint string, logger *slog.Logger) *HTTPImageUploader {
	return &HTTPImageUploader{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "image_host"),
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

func (u *HTTPImageUploader) Upload(ctx context.Context, apiKey, filename string, file io.Reader) (string, error) {
	if apiKey == "" {
		return "", model.ErrAPIKeyMissing
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("key", apiKey); err != nil {
		return "", fmt.Errorf("image upload: write key field: %w", err)
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("image upload: create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("image upload: copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("image upload: close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("image upload: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: image upload: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: image upload: read body: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: image upload: unexpected status %d", model.ErrUpstream, resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: image upload: decode response: %v", model.ErrUpstream, err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", fmt.Errorf("%w: image upload: host reported failure", model.ErrUpstream)
	}

	u.log.InfoContext(ctx, "image uploaded", slog.String("filename", filename))
	return parsed.Data.URL, nil
}
