package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storyhub/config"
	"storyhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testEvent() *service.ActivityEvent {
	return &service.ActivityEvent{
		RequestID:  "req-1",
		Type:       service.ActivityBlogCreated,
		ResourceID: "blog-1",
		BlogID:     "blog-1",
		ActorID:    "user-1",
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishActivity(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "blog.created", received.Message.Attributes["type"])
	assert.Equal(t, "blog-1", received.Message.Attributes["blog_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.ActivityEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishActivity(context.Background(), testEvent())

	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("noop when unconfigured", func(t *testing.T) {
		publisher, err := NewEventPublisher(PublisherParams{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishActivity(context.Background(), testEvent()))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: ProviderLocal}}
		_, err := NewEventPublisher(PublisherParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
		_, err := NewEventPublisher(PublisherParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "kafka")
	})
}
