package assistant

import "context"

// ChatCompleter produces one assistant reply for a user message. Implemented
// by the OpenAI client; mocked in tests.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (reply string, finishReason string, err error)
}
