package ports

import (
	"context"
	"time"
)

// Notification is a user facing message about an entity change.
type Notification struct {
	UserID        string
	Title         string
	Message       string
	Kind          string
	RelatedEntity string
	RelatedID     string
	CreatedAt     time.Time
}

// Notifier delivers notifications. Callers treat it as fire-and-forget:
// an error is logged and never undoes the change that triggered it.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// AuditRecord describes one state-changing action.
type AuditRecord struct {
	Actor      string
	Action     string
	EntityKind string
	EntityID   string
	Changes    map[string]any
	OccurredAt time.Time
}

// Auditor persists audit records with the same fire-and-forget contract as Notifier.
type Auditor interface {
	Record(ctx context.Context, r AuditRecord) error
}

// TrackingCache stores serialized public tracking views by token.
// A miss is reported as ok == false with a nil error.
//
// Every Invalidate bumps the token's generation. Readers take the generation
// before loading a view and pass it to Set, which stores nothing when an
// invalidation happened in between. A load racing a status change therefore
// cannot put the old view back after the change was committed.
type TrackingCache interface {
	Get(ctx context.Context, token string) (value []byte, ok bool, err error)

	// Generation is 0 for a token that was never invalidated.
	Generation(ctx context.Context, token string) (int64, error)

	// Set reports stored == false with a nil error when the generation moved on.
	Set(ctx context.Context, token string, generation int64, value []byte) (stored bool, err error)

	Invalidate(ctx context.Context, token string) error
}
