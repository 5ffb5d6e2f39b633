package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	"storyhub/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Outcomes recorded on the activity counter.
const (
	outcomeProcessed = "processed"
	outcomeStale     = "stale"
	outcomeRejected  = "rejected"
	outcomeRetry     = "retry"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ActivityHandler consumes blog and comment activity pushed by Pub/Sub or the local publisher.
type ActivityHandler struct {
	verifyToken func(req *http.Request) error
	logger      *slog.Logger
	blogRepo    repository.BlogRepository
	events      *prometheus.CounterVec
}

// ActivityHandlerParams holds dependencies for the ActivityHandler
type ActivityHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	BlogRepo repository.BlogRepository
	Registry prometheus.Registerer
}

// NewActivityHandler creates a new activity push handler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	namespace := "storyhub"
	if params.Config.Metrics != nil && params.Config.Metrics.Namespace != "" {
		namespace = params.Config.Metrics.Namespace
	}

	handler := &ActivityHandler{
		logger:   params.Logger,
		blogRepo: params.BlogRepo,
		events: promauto.With(params.Registry).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "activity_events_total",
			Help:      "Activity events received by the worker, by type and outcome",
		}, []string{"type", "outcome"}),
	}

	// Push tokens are only minted by Google Pub/Sub
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelopment {
		handler.verifyToken = verifyPubSubToken
	}

	return handler
}

// HandlePush handles incoming Pub/Sub push messages
func (h *ActivityHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ActivityEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse activity event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	outcome, err := h.processActivity(ctx, &event)
	h.events.WithLabelValues(string(event.Type), outcome).Inc()
	if err != nil {
		reqLogger.Error("[Worker] Failed to process activity",
			slog.String("type", string(event.Type)),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 asks Pub/Sub to redeliver; anything else is acknowledged
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *ActivityHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ActivityEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processActivity validates the event and resolves the blog it refers to.
func (h *ActivityHandler) processActivity(ctx context.Context, event *service.ActivityEvent) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	blogID, err := uuid.Parse(event.BlogID)
	if err != nil {
		return outcomeRejected, errors.Wrap(err, "invalid blog id")
	}

	switch event.Type {
	case service.ActivityBlogDeleted:
		logger.Info("[Worker] Blog removed",
			slog.String("blog_id", event.BlogID),
			slog.String("actor_id", event.ActorID),
		)

		return outcomeProcessed, nil

	case service.ActivityBlogCreated, service.ActivityBlogUpdated, service.ActivityCommentCreated:

	default:
		return outcomeRejected, errors.Errorf("unknown activity type %q", event.Type)
	}

	blog, err := h.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			// Deleted before the event arrived
			logger.Info("[Worker] Skipping activity for missing blog",
				slog.String("type", string(event.Type)),
				slog.String("blog_id", event.BlogID),
			)

			return outcomeStale, nil
		}

		return outcomeRetry, newRetryableError(err)
	}

	logger.Info("[Worker] Activity processed",
		slog.String("type", string(event.Type)),
		slog.String("resource_id", event.ResourceID),
		slog.String("blog_id", event.BlogID),
		slog.String("blog_title", blog.Title),
		slog.String("actor_id", event.ActorID),
		slog.Time("occurred_at", event.OccurredAt),
	)

	return outcomeProcessed, nil
}

// verifyPubSubToken validates the OIDC token Google attaches to authenticated push subscriptions.
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
