package predict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Predict_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predicted_price": 2750.5}`))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)

	result, err := client.Predict(context.Background(), map[string]any{
		"device_type": "laptop",
		"brand":       "dell",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2750.5, result["predicted_price"])
}

func TestClient_Predict_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)

	_, err := client.Predict(context.Background(), map[string]any{})

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_Predict_Timeout(t *testing.T) {
	blocked := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer upstream.Close()
	defer close(blocked)

	client := NewClient(upstream.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Predict(ctx, map[string]any{})

	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestClient_Predict_BadJSON(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)

	_, err := client.Predict(context.Background(), map[string]any{})

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_Healthy(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	client := NewClient(upstream.URL)
	assert.True(t, client.Healthy(context.Background()))
}

func TestClient_Healthy_Down(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	upstream.Close() // connection refused

	client := NewClient(upstream.URL)
	assert.False(t, client.Healthy(context.Background()))
}
