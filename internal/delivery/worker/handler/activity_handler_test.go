package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storyhub/config"
	"storyhub/internal/domain/entity"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	mockRepo "storyhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestActivityHandler(t *testing.T, cfg *config.Config) (*ActivityHandler, *mockRepo.MockBlogRepository) {
	t.Helper()

	blogRepo := mockRepo.NewMockBlogRepository(t)
	handler := NewActivityHandler(ActivityHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
		BlogRepo: blogRepo,
		Registry: prometheus.NewRegistry(),
	})

	return handler, blogRepo
}

func pushRequest(t *testing.T, event *service.ActivityEvent) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-from-attributes"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(handler *ActivityHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = handler.HandlePush(c)

	return rec
}

func TestActivityHandler_HandlePush(t *testing.T) {
	blogID := uuid.New()

	newEvent := func(kind service.ActivityType) *service.ActivityEvent {
		return &service.ActivityEvent{
			Type:       kind,
			ResourceID: blogID.String(),
			BlogID:     blogID.String(),
			ActorID:    uuid.NewString(),
			OccurredAt: time.Now(),
		}
	}

	t.Run("resolves the blog and acknowledges", func(t *testing.T) {
		handler, blogRepo := newTestActivityHandler(t, &config.Config{})
		blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(&entity.Blog{ID: blogID, Title: "Hello"}, nil).Once()

		rec := servePush(handler, pushRequest(t, newEvent(service.ActivityBlogCreated)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(handler.events.WithLabelValues("blog.created", outcomeProcessed)), 0)
	})

	t.Run("missing blog is acknowledged as stale", func(t *testing.T) {
		handler, blogRepo := newTestActivityHandler(t, &config.Config{})
		blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(nil, repository.ErrBlogNotFound).Once()

		rec := servePush(handler, pushRequest(t, newEvent(service.ActivityCommentCreated)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(handler.events.WithLabelValues("comment.created", outcomeStale)), 0)
	})

	t.Run("database failure asks for redelivery", func(t *testing.T) {
		handler, blogRepo := newTestActivityHandler(t, &config.Config{})
		blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(nil, errors.New("connection refused")).Once()

		rec := servePush(handler, pushRequest(t, newEvent(service.ActivityBlogUpdated)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("deleted blogs are not looked up", func(t *testing.T) {
		handler, _ := newTestActivityHandler(t, &config.Config{})

		rec := servePush(handler, pushRequest(t, newEvent(service.ActivityBlogDeleted)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown type is dropped", func(t *testing.T) {
		handler, _ := newTestActivityHandler(t, &config.Config{})

		rec := servePush(handler, pushRequest(t, newEvent("blog.liked")))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 1, testutil.ToFloat64(handler.events.WithLabelValues("blog.liked", outcomeRejected)), 0)
	})

	t.Run("malformed data", func(t *testing.T) {
		handler, _ := newTestActivityHandler(t, &config.Config{})
		req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(`{"message":{"data":"%%%"}}`)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec := servePush(handler, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google provider outside development requires a push token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		cfg.Env.Env = config.EnvProduction
		handler, _ := newTestActivityHandler(t, cfg)

		rec := servePush(handler, pushRequest(t, newEvent(service.ActivityBlogDeleted)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google provider in development skips verification", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		cfg.Env.Env = config.EnvDevelopment
		handler, _ := newTestActivityHandler(t, cfg)

		assert.Nil(t, handler.verifyToken)
	})
}

func TestActivityHandler_ExtractRequestID(t *testing.T) {
	handler, _ := newTestActivityHandler(t, &config.Config{})
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	event := &service.ActivityEvent{RequestID: "from-event"}
	assert.Equal(t, "from-event", handler.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", handler.extractRequestID(ctx, &msg, event))

	generated := handler.extractRequestID(ctx, &PubSubMessage{}, &service.ActivityEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
