package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4"
)

const systemPrompt = `Behave as you are places API that returns responses in JSON format and follows the following schema: ` +
	`{ name: string; location: string; description?: string; type: string; } as an array of places. ` +
	`You only return places that exist. Type indicates whether it's a tourist attraction or something else. ` +
	`The location includes the street, street number, city`

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type suggester struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewPlacesSuggester возвращает подсказчик популярных мест через chat completions API.
// Без ключа возвращается подсказчик, который ничего не предлагает.
func NewPlacesSuggester(cfg *config.OpenAIConfig, logger *zap.Logger) repository.PlacesSuggester {
	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Info("OpenAI API key is not set, popular places suggestions disabled")
		return noopSuggester{}
	}

	baseURL := cfg.BaseURL
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &suggester{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// FindPopularPlaces спрашивает модель о популярных местах города
func (s *suggester) FindPopularPlaces(ctx context.Context, city, country string) ([]domain.PopularPlace, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model: s.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "List the most popular places in " + city + ", " + country + "."},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Failed to request popular places", zap.Error(err))
		return nil, fmt.Errorf("request chat completion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		s.logger.Error("OpenAI API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("chat completion failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chat completion: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, nil
	}

	places, err := parsePlaces(out.Choices[0].Message.Content)
	if err != nil {
		s.logger.Warn("Model returned unparsable places",
			zap.String("city", city),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Popular places suggested",
		zap.String("city", city),
		zap.String("country", country),
		zap.Int("count", len(places)))

	return places, nil
}

// parsePlaces разбирает JSON-массив из ответа модели, в том числе внутри ```json блока
func parsePlaces(content string) ([]domain.PopularPlace, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}
	if start := strings.Index(content, "["); start >= 0 {
		if end := strings.LastIndex(content, "]"); end > start {
			content = content[start : end+1]
		}
	}

	var places []domain.PopularPlace
	if err := json.Unmarshal([]byte(content), &places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	return places, nil
}

type noopSuggester struct{}

func (noopSuggester) FindPopularPlaces(context.Context, string, string) ([]domain.PopularPlace, error) {
	return nil, nil
}
