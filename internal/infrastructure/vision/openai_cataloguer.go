// Package vision asks an OpenAI-compatible vision model to catalogue a group
// of photos that show one item.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kept_house/internal/domain/entities"
	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNoPhotos      = errors.New("no photos to analyze")
	ErrEmptyResponse = errors.New("vision model returned no choices")
	ErrNotConfigured = errors.New("vision api key not configured")
)

const systemPrompt = `You catalogue household items for an estate sale.
Reply with a single JSON object with keys: title, description, category, price_low, price_high.
category must be one of: %s.
Prices are fair used-market values in US dollars.`

// OpenAICataloguer implements interfaces.IVisionCataloguer over chat/completions.
type OpenAICataloguer struct {
	client *resty.Client
	model  string
	apiKey string
}

var _ interfaces.IVisionCataloguer = (*OpenAICataloguer)(nil)

func NewOpenAICataloguer(cfg appconfig.VisionConfig) *OpenAICataloguer {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetRetryCount(4).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(4 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAICataloguer{client: client, model: model, apiKey: cfg.APIKey}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type textPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type imagePart struct {
	Type     string   `json:"type"`
	ImageURL imageURL `json:"image_url"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type suggestionPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PriceLow    float64 `json:"price_low"`
	PriceHigh   float64 `json:"price_high"`
}

func (c *OpenAICataloguer) Suggest(ctx context.Context, photoURLs []string) (entities.Suggestion, error) {
	if c.apiKey == "" {
		return entities.Suggestion{}, ErrNotConfigured
	}
	if len(photoURLs) == 0 {
		return entities.Suggestion{}, ErrNoPhotos
	}

	parts := []any{textPart{Type: "text", Text: "These photos show one item. Catalogue it."}}
	for _, u := range photoURLs {
		parts = append(parts, imagePart{Type: "image_url", ImageURL: imageURL{URL: u, Detail: "auto"}})
	}
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(systemPrompt, strings.Join(entities.Categories, ", "))},
			{Role: "user", Content: parts},
		},
		MaxTokens:      400,
		ResponseFormat: map[string]any{"type": "json_object"},
	}

	var out chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return entities.Suggestion{}, fmt.Errorf("failed to call vision API: %w", err)
	}
	if resp.IsError() {
		msg := string(resp.Body())
		if out.Error != nil {
			msg = out.Error.Message
		}
		return entities.Suggestion{}, fmt.Errorf("vision API returned HTTP %d: %s", resp.StatusCode(), msg)
	}
	if len(out.Choices) == 0 {
		return entities.Suggestion{}, ErrEmptyResponse
	}

	s, err := parseSuggestion(out.Choices[0].Message.Content)
	if err != nil {
		return entities.Suggestion{}, err
	}
	logger.Component(ctx, "vision", "openai").WithFields(logger.Fields{
		"photos":   len(photoURLs),
		"category": s.Category,
	}).Debug("suggestion received")
	return s, nil
}

// parseSuggestion accepts the model's JSON, tolerating a fenced code block.
func parseSuggestion(content string) (entities.Suggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var p suggestionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &p); err != nil {
		return entities.Suggestion{}, fmt.Errorf("failed to decode suggestion: %w", err)
	}
	if p.PriceLow < 0 {
		p.PriceLow = 0
	}
	if p.PriceHigh < p.PriceLow {
		p.PriceHigh = p.PriceLow
	}
	return entities.Suggestion{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Category:    entities.NormalizeCategory(p.Category),
		PriceLow:    p.PriceLow,
		PriceHigh:   p.PriceHigh,
	}, nil
}
