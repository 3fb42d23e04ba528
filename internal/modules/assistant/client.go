package assistant

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	chatTemperature = 0.7
	chatMaxTokens   = 512
)

// OpenAIClient wraps the OpenAI chat completions API behind ChatCompleter.
type OpenAIClient struct {
	client openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModel(model),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(chatTemperature),
		MaxCompletionTokens: openai.Int(chatMaxTokens),
	})
	if err != nil {
		return "", "", err
	}
	if len(completion.Choices) == 0 {
		return "", "", errors.New("no choices returned")
	}

	choice := completion.Choices[0]
	return choice.Message.Content, string(choice.FinishReason), nil
}
