package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sender is what the bot needs from the transport: answer the current event
// with the reply token, and push follow-up bundles (carousel + menu).
type Sender interface {
	Reply(ctx context.Context, replyToken string, msgs ...Message) error
	Push(ctx context.Context, userID string, msgs ...Message) error
}

type Client struct {
	BaseURL      string
	ChannelToken string
	HTTP         *http.Client
}

func NewClient(baseURL, channelToken string) *Client {
	if baseURL == "" {
		baseURL = "https://api.line.me"
	}
	return &Client{
		BaseURL:      baseURL,
		ChannelToken: channelToken,
		HTTP:         &http.Client{Timeout: 10 * time.Second},
	}
}

type replyReq struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

type pushReq struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

func (c *Client) Reply(ctx context.Context, replyToken string, msgs ...Message) error {
	if replyToken == "" {
		return errors.New("line: reply token is empty")
	}
	return c.post(ctx, "/v2/bot/message/reply", replyReq{ReplyToken: replyToken, Messages: msgs})
}

func (c *Client) Push(ctx context.Context, userID string, msgs ...Message) error {
	if userID == "" {
		return errors.New("line: user id is empty")
	}
	return c.post(ctx, "/v2/bot/message/push", pushReq{To: userID, Messages: msgs})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if c.HTTP == nil {
		return errors.New("line: http client is nil")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.ChannelToken)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("line: %s", msg)
	}
	return nil
}
