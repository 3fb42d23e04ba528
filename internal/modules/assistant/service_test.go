package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, system, user string) (string, string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.String(1), args.Error(2)
}

func TestService_Chat_Success(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, "how do I recycle a laptop?").
		Return("Drop it at a certified e-waste facility.", "stop", nil)

	service := NewService(completer, zerolog.Nop())

	reply := service.Chat(context.Background(), "how do I recycle a laptop?")

	assert.Equal(t, "Drop it at a certified e-waste facility.", reply)
}

func TestService_Chat_UpstreamFailureDegrades(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", "", errors.New("api error (status 500)"))

	service := NewService(completer, zerolog.Nop())

	reply := service.Chat(context.Background(), "hello")

	// The user always gets a reply; upstream trouble never surfaces.
	assert.Equal(t, fallbackReply, reply)
}

func TestService_Chat_ContentFilter(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", "content_filter", nil)

	service := NewService(completer, zerolog.Nop())

	reply := service.Chat(context.Background(), "something off limits")

	assert.Equal(t, safetyReply, reply)
	assert.NotEqual(t, fallbackReply, reply)
}

func TestService_Chat_EmptyReplyFallsBack(t *testing.T) {
	completer := new(mockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("  ", "stop", nil)

	service := NewService(completer, zerolog.Nop())

	reply := service.Chat(context.Background(), "hello")

	assert.Equal(t, fallbackReply, reply)
}
