package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the generative-text collaborator used to phrase the next
// follow-up question while registration fields are still missing.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.  API credentials and the
// model name are loaded from environment variables.
type OpenAIClient struct {
	client       *openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient constructs an OpenAI-backed client.  It reads the API key
// and model name from the environment and falls back to a sensible default
// model.  The system prompt carries the assistant persona and is sent with
// every request.
func NewOpenAIClient(systemPrompt string) *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	model := os.Getenv("OPENAI_MODEL_CHAT")
	if model == "" {
		// default to a modern small model; can be overridden via env
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client:       c,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Generate sends the prompt to the chat completion API and returns the
// assistant's text.  A response without a text payload is coerced to its
// string representation rather than treated as an error, so the caller can
// still log and return something.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return fmt.Sprintf("%v", resp), nil
	}
	return resp.Choices[0].Message.Content, nil
}
