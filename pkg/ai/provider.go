// Package ai holds the chat-completion request model and the provider
// interface the pipeline talks to.
package ai

import "context"

// Role tags a message.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message represents a single chat message for LLM requests.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest defines the input to an LLM chat completion.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatResponse is a normalized response from an LLM. Content is the first
// choice's message content, unmodified.
type ChatResponse struct {
	Content string
	Model   string
	Choices int
}

// Provider sends one chat completion request and waits for the reply.
type Provider interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
