package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
)

// OpenAIProvider talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIProvider struct {
	baseURL    string
	modelName  string
	apiKey     string
	delay      time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

func NewOpenAIProvider(cfg config.ProviderConfig, logger *slog.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL:    cfg.BaseURL,
		modelName:  cfg.Model,
		apiKey:     cfg.APIKey,
		delay:      time.Duration(cfg.DelayMs) * time.Millisecond,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger.With("provider", "openai"),
	}
}

// NewOpenAIProviderWithURL overrides the base URL (for testing).
func NewOpenAIProviderWithURL(baseURL string, cfg config.ProviderConfig, logger *slog.Logger) *OpenAIProvider {
	p := NewOpenAIProvider(cfg, logger)
	p.baseURL = baseURL
	return p
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Delay() time.Duration {
	return p.delay
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *OpenAIProvider) Enhance(ctx context.Context, vocab *model.Vocabulary, fields []model.FieldName) (map[string]interface{}, error) {
	if p.apiKey == "" {
		return nil, model.ErrAPIKeyMissing
	}

	body, err := json.Marshal(chatRequest{
		Model:    p.modelName,
		Messages: []chatMessage{{Role: "user", Content: BuildPrompt(vocab, fields)}},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	p.log.DebugContext(ctx, "enrichment request", slog.String("korean_word", vocab.KoreanWord), slog.Int("fields", len(fields)))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: openai: read body: %v", model.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: openai: unexpected status %d", model.ErrUpstream, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: openai: decode envelope: %v", model.ErrBadAIResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai: empty choices", model.ErrBadAIResponse)
	}

	return ParseFields(parsed.Choices[0].Message.Content)
}
