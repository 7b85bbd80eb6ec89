package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a chat-completion backend. The bot uses it as the fallback
// answerer for free-text GPU questions that the menu flow does not cover.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
