package kafka

import (
	"context"
	"encoding/json"
	"time"

	"logistics/internal/core/ports"

	"github.com/pkg/errors"
)

type publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

// EventSink implements ports.Notifier and ports.Auditor on top of a Producer.
// Notifications are keyed by user, audit records by entity, so events for one
// entity stay ordered within a partition.
type EventSink struct {
	p                 publisher
	notificationTopic string
	auditTopic        string
}

// NewEventSink publishes notifications and audit records to their own topics through p.
func NewEventSink(p *Producer, notificationTopic, auditTopic string) *EventSink {
	return &EventSink{p: p, notificationTopic: notificationTopic, auditTopic: auditTopic}
}

type notificationEvent struct {
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Kind          string    `json:"kind"`
	RelatedEntity string    `json:"relatedEntity,omitempty"`
	RelatedID     string    `json:"relatedId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type auditEvent struct {
	Actor      string         `json:"actor"`
	Action     string         `json:"action"`
	EntityKind string         `json:"entityKind"`
	EntityID   string         `json:"entityId"`
	Changes    map[string]any `json:"changes,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func (s *EventSink) Notify(ctx context.Context, n ports.Notification) error {
	value, err := json.Marshal(notificationEvent{
		UserID:        n.UserID,
		Title:         n.Title,
		Message:       n.Message,
		Kind:          n.Kind,
		RelatedEntity: n.RelatedEntity,
		RelatedID:     n.RelatedID,
		CreatedAt:     n.CreatedAt.UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "encode notification")
	}
	return s.p.Publish(ctx, s.notificationTopic, []byte(n.UserID), value)
}

func (s *EventSink) Record(ctx context.Context, r ports.AuditRecord) error {
	value, err := json.Marshal(auditEvent{
		Actor:      r.Actor,
		Action:     r.Action,
		EntityKind: r.EntityKind,
		EntityID:   r.EntityID,
		Changes:    r.Changes,
		OccurredAt: r.OccurredAt.UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "encode audit record")
	}
	return s.p.Publish(ctx, s.auditTopic, []byte(r.EntityID), value)
}
