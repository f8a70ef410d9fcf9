package enrich

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testVocab() *model.Vocabulary {
	return &model.Vocabulary{KoreanWord: "가다", BanglaMeaning: "যাওয়া", PartOfSpeech: "verb"}
}

func openAICfg(apiKey string) config.ProviderConfig {
	return config.ProviderConfig{Model: "test-model", APIKey: apiKey, DelayMs: 500}
}

func TestOpenAIProvider_Enhance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "가다")

		// Models often fence their output; the provider must cope.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{
					"content": "```json\n{\"romanization\": \"gada\"}\n```",
				}},
			},
		})
	}))
	defer server.Close()

	p := NewOpenAIProviderWithURL(server.URL, openAICfg("sk-test"), testLogger())

	fields, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldRomanization})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"romanization": "gada"}, fields)
}

func TestOpenAIProvider_MissingAPIKey(t *testing.T) {
	// The key check happens before any network call.
	p := NewOpenAIProviderWithURL("http://127.0.0.1:1", openAICfg(""), testLogger())

	_, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldRomanization})
	assert.ErrorIs(t, err, model.ErrAPIKeyMissing)
}

func TestOpenAIProvider_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewOpenAIProviderWithURL(server.URL, openAICfg("sk-test"), testLogger())

	_, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldRomanization})
	assert.ErrorIs(t, err, model.ErrUpstream)
}

func TestOpenAIProvider_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	p := NewOpenAIProviderWithURL(server.URL, openAICfg("sk-test"), testLogger())

	_, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldRomanization})
	assert.ErrorIs(t, err, model.ErrBadAIResponse)
}

func TestOpenAIProvider_Delay(t *testing.T) {
	p := NewOpenAIProvider(openAICfg("sk-test"), testLogger())
	assert.Equal(t, 500*time.Millisecond, p.Delay())
	assert.Equal(t, "openai", p.Name())
}
