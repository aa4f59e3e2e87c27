// Package logsink writes notifications and audit records to the structured
// log. It stands in for the event broker when none is configured.
package logsink

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

type Sink struct {
	logger *slog.Logger
}

// New logs notifications and audit records instead of publishing them.
func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger.With("component", "event-sink")}
}

func (s *Sink) Notify(ctx context.Context, n ports.Notification) error {
	s.logger.InfoContext(ctx, "notification",
		"user_id", n.UserID,
		"title", n.Title,
		"kind", n.Kind,
		"related_entity", n.RelatedEntity,
		"related_id", n.RelatedID,
	)
	return nil
}

func (s *Sink) Record(ctx context.Context, r ports.AuditRecord) error {
	s.logger.InfoContext(ctx, "audit",
		"actor", r.Actor,
		"action", r.Action,
		"entity_kind", r.EntityKind,
		"entity_id", r.EntityID,
		"changes", r.Changes,
	)
	return nil
}
