package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	BotToken      string        `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID        int64         `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	Enabled       bool          `yaml:"enabled"`
	Timeout       time.Duration `yaml:"timeout"`
	RetryAttempts int           `yaml:"retry_attempts"`
}

type Client struct {
	config Config
	client *http.Client
	apiURL string
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

func NewClient(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		apiURL: fmt.Sprintf("https://api.telegram.org/bot%s", config.BotToken),
	}
}

func (c *Client) IsEnabled() bool {
	return c.config.Enabled && c.config.ChatID != 0 && c.config.BotToken != ""
}

// SendMessage posts an HTML message, retrying with linear backoff.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	message := sendMessageRequest{
		ChatID:    c.config.ChatID,
		Text:      text,
		ParseMode: "HTML",
	}

	var lastErr error
	for attempt := 1; attempt <= c.config.RetryAttempts; attempt++ {
		lastErr = c.send(ctx, message)
		if lastErr == nil {
			return nil
		}
		if attempt < c.config.RetryAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}
	return fmt.Errorf("send telegram message after %d attempts: %w", c.config.RetryAttempts, lastErr)
}

func (c *Client) send(ctx context.Context, message sendMessageRequest) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/sendMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var out apiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if !out.OK {
		return fmt.Errorf("telegram API error %d: %s", out.ErrorCode, out.Description)
	}
	return nil
}
