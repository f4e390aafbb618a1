package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Исходы запроса для метрик
const (
	outcomeSuccess  = "success"
	outcomeError    = "error"
	outcomeDisabled = "disabled"
)

// Config параметры клиента
type Config struct {
	BaseURL     string // например https://api.openai.com/v1
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client клиент OpenAI-совместимого API генерации ответов
type Client struct {
	cfg        Config
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(cfg Config, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// Enabled возвращает true, если задан API ключ
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// Complete отправляет диалог и возвращает текст первого варианта ответа
// Повторных попыток нет
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if !c.Enabled() {
		c.metrics.ObserveCompletion(outcomeDisabled)
		return "", ErrNotConfigured
	}

	text, err := c.complete(ctx, messages)
	if err != nil {
		c.metrics.ObserveCompletion(outcomeError)
		c.log.Error("Completion request failed: model=%s, error=%v", c.cfg.Model, err)
		return "", err
	}

	c.metrics.ObserveCompletion(outcomeSuccess)
	return text, nil
}

func (c *Client) complete(ctx context.Context, messages []Message) (string, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	body, err := json.Marshal(ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstream, resp.StatusCode, string(raw))
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrInvalidResponse)
	}

	return completion.Choices[0].Message.Content, nil
}
