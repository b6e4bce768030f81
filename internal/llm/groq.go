package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// GroqClient implements Client for Groq's OpenAI-compatible endpoint
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a new Groq client. The config's BaseURL, when set, replaces
// the Groq endpoint, which is how tests point it at an httptest server.
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultGroqConfig()
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = DefaultGroqBaseURL
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &GroqClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Chat sends the conversation as one chat completion request
func (c *GroqClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// Model returns the configured model name
func (c *GroqClient) Model() string {
	return c.config.Model
}

// Close is a no-op; the underlying HTTP client holds no dedicated resources.
func (c *GroqClient) Close() error {
	return nil
}
