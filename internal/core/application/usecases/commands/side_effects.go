package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/ports"
)

// sideEffects emits notifications and audit records after a commit. Failures
// are logged and never reach the caller.
type sideEffects struct {
	notifier ports.Notifier
	auditor  ports.Auditor
	logger   *slog.Logger
}

func newSideEffects(notifier ports.Notifier, auditor ports.Auditor, logger *slog.Logger) sideEffects {
	if logger == nil {
		logger = slog.Default()
	}
	return sideEffects{notifier: notifier, auditor: auditor, logger: logger}
}

func (e sideEffects) notify(ctx context.Context, n ports.Notification) {
	if e.notifier == nil {
		return
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if err := e.notifier.Notify(ctx, n); err != nil {
		e.logger.WarnContext(ctx, "notification failed",
			"kind", n.Kind, "related_entity", n.RelatedEntity, "related_id", n.RelatedID, "error", err)
	}
}

func (e sideEffects) audit(ctx context.Context, r ports.AuditRecord) {
	if e.auditor == nil {
		return
	}
	if r.OccurredAt.IsZero() {
		r.OccurredAt = time.Now().UTC()
	}
	if err := e.auditor.Record(ctx, r); err != nil {
		e.logger.WarnContext(ctx, "audit record failed",
			"action", r.Action, "entity_kind", r.EntityKind, "entity_id", r.EntityID, "error", err)
	}
}
