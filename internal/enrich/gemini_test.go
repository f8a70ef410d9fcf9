package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

func geminiCfg(apiKey string) config.ProviderConfig {
	return config.ProviderConfig{Model: "gemini-1.5-flash", APIKey: apiKey, DelayMs: 1000}
}

func TestGeminiProvider_Enhance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		// Gemini authenticates with a query parameter, not a header.
		assert.Equal(t, "g-test", r.URL.Query().Get("key"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "가다")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `{"themes": ["movement"]}`}},
				}},
			},
		})
	}))
	defer server.Close()

	p := NewGeminiProviderWithURL(server.URL, geminiCfg("g-test"), testLogger())

	fields, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldThemes})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"themes": []interface{}{"movement"}}, fields)
}

func TestGeminiProvider_MissingAPIKey(t *testing.T) {
	p := NewGeminiProviderWithURL("http://127.0.0.1:1", geminiCfg(""), testLogger())

	_, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldThemes})
	assert.ErrorIs(t, err, model.ErrAPIKeyMissing)
}

func TestGeminiProvider_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer server.Close()

	p := NewGeminiProviderWithURL(server.URL, geminiCfg("g-test"), testLogger())

	_, err := p.Enhance(context.Background(), testVocab(), []model.FieldName{model.FieldThemes})
	assert.ErrorIs(t, err, model.ErrBadAIResponse)
}

func TestGeminiProvider_Delay(t *testing.T) {
	p := NewGeminiProvider(geminiCfg("g-test"), testLogger())
	assert.Equal(t, time.Second, p.Delay())
	assert.Equal(t, "gemini", p.Name())
}
