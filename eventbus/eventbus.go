// Package eventbus publishes moderation audit events to Kafka.
//
// Publishing is best-effort: a lifecycle transition never fails because
// the bus is down. Callers log publish errors and move on; downstream
// consumers (audit trail, notifications) are outside this repository.
package eventbus

import (
	"context"
	"encoding/json"
	"time"
)

// Event types emitted by the moderation workflow.
const (
	EventPromptSubmitted = "prompt.submitted"
	EventPromptApproved  = "prompt.approved"
	EventPromptRejected  = "prompt.rejected"
	EventPromptDeleted   = "prompt.deleted"
	EventPostPublished   = "post.published"
	EventPostUnpublished = "post.unpublished"
	EventPostArchived    = "post.archived"
)

// Event is the payload carried on the bus.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Marshal serializes the event for the wire.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher is the abstraction the services depend on.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NopPublisher drops every event. Used when Kafka is not configured and
// in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NopPublisher) Close()                                                       {}
