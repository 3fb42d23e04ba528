package assistant

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

const systemPrompt = "You are Scraply's assistant for responsible e-waste " +
	"disposal. Help users with recycling electronics, finding e-waste " +
	"facilities, device price estimates, and environmental impact of " +
	"electronic waste. Keep answers short and practical. If a question is " +
	"unrelated to e-waste or recycling, politely steer the user back."

const (
	fallbackReply = "Sorry, I'm having trouble answering right now. " +
		"Please try again in a moment."
	safetyReply = "I can't help with that request. Ask me anything about " +
		"e-waste recycling instead."
)

// Service proxies chat messages to the completion backend. Upstream failures
// never surface to the client; the user always gets a reply.
type Service struct {
	completer ChatCompleter
	logger    zerolog.Logger
}

func NewService(completer ChatCompleter, logger zerolog.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

func (s *Service) Chat(ctx context.Context, message string) string {
	reply, finishReason, err := s.completer.Complete(ctx, systemPrompt, message)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat completion failed")
		return fallbackReply
	}

	if finishReason == "content_filter" {
		return safetyReply
	}

	if strings.TrimSpace(reply) == "" {
		return fallbackReply
	}
	return reply
}
