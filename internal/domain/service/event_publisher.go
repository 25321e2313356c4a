package service

import (
	"context"
	"time"
)

// ResourceEvent describes a committed mutation of a resource record.
type ResourceEvent struct {
	EventID    string    `json:"event_id"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Resource   string    `json:"resource"`
	Operation  string    `json:"operation"`
	Key        string    `json:"key"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishResourceEvent publishes a mutation event for downstream consumers
	PublishResourceEvent(ctx context.Context, event *ResourceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
