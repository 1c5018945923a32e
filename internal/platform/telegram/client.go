package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"airdrop-tool-backend/internal/common/logger"

	"github.com/rs/zerolog"
)

const apiBase = "https://api.telegram.org"

// User is a Telegram account as reported by the Bot API.
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Update is one long-poll item. Only message updates are requested.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Client is a minimal Telegram Bot API client: long-polled updates in,
// plain text messages out.
type Client struct {
	httpClient *http.Client
	token      string
	logger     zerolog.Logger
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{
			// Above the long-poll window so the server side closes first.
			Timeout: 60 * time.Second,
		},
		token:  token,
		logger: logger.With("telegram"),
	}
}

// GetUpdates long-polls for message updates after offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	payload := map[string]interface{}{
		"offset":          offset,
		"timeout":         int(timeout.Seconds()),
		"allowed_updates": []string{"message"},
	}

	raw, err := c.call(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}
	return updates, nil
}

// SendMessage sends a plain text message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.call(ctx, "sendMessage", map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	})
	return err
}

func (c *Client) call(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", apiBase, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("telegram %s: read body: %w", method, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("telegram %s: decode response: %w", method, err)
	}
	if !apiResp.Ok {
		c.logger.Warn().
			Str("method", method).
			Str("description", apiResp.Description).
			Msg("Telegram API call failed")
		return nil, fmt.Errorf("telegram %s: %s", method, apiResp.Description)
	}

	return apiResp.Result, nil
}
