package service

import (
	"context"
	"time"
)

// ActivityType names a content change worth telling downstream consumers about.
type ActivityType string

const (
	ActivityBlogCreated    ActivityType = "blog.created"
	ActivityBlogUpdated    ActivityType = "blog.updated"
	ActivityBlogDeleted    ActivityType = "blog.deleted"
	ActivityCommentCreated ActivityType = "comment.created"
)

// ActivityEvent is published after a blog or comment write has been committed.
type ActivityEvent struct {
	RequestID  string       `json:"request_id,omitempty"` // For distributed tracing
	Type       ActivityType `json:"type"`
	ResourceID string       `json:"resource_id"`
	BlogID     string       `json:"blog_id"`
	ActorID    string       `json:"actor_id"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivity publishes a content activity event
	PublishActivity(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
