package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// GeminiProvider talks to the Gemini generateContent REST endpoint. The API
// key rides as a query parameter, not a header.
type GeminiProvider struct {
	baseURL    string
	modelName  string
	apiKey     string
	delay      time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

func NewGeminiProvider(cfg config.ProviderConfig, logger *slog.Logger) *GeminiProvider {
	return &GeminiProvider{
		baseURL:    cfg.BaseURL,
		modelName:  cfg.Model,
		apiKey:     cfg.APIKey,
		delay:      time.Duration(cfg.DelayMs) * time.Millisecond,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("provider", "gemini"),
	}
}

// NewGeminiProviderWithURL overrides the base URL (for testing).
func NewGeminiProviderWithURL(baseURL string, cfg config.ProviderConfig, logger *slog.Logger) *GeminiProvider {
	p := NewGeminiProvider(cfg, logger)
	p.baseURL = baseURL
	return p
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Delay() time.Duration {
	return p.delay
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (p *GeminiProvider) Enhance(ctx context.Context, vocab *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error) {
	if p.apiKey == "" {
		return nil, model.ErrAPIKeyMissing
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: BuildPrompt(vocab, fields)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		p.baseURL, url.PathEscape(p.modelName), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "enrichment request", slog.String("korean_word", vocab.KoreanWord), slog.Int("fields", len(fields)))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: read body: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gemini: unexpected status %d", model.ErrUpstream, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: gemini: decode envelope: %v", model.ErrBadAIResponse, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini: empty candidates", model.ErrBadAIResponse)
	}

	return ParseFields(parsed.Candidates[0].Content.Parts[0].Text)
}
