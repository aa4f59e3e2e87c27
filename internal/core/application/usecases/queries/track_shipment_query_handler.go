package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// TrackShipmentQueryHandler serves tracking views from the cache and falls
// back to the database. Concurrent misses for one token share a single load.
// Cache failures are logged and never fail the query.
type TrackShipmentQueryHandler struct {
	db     *gorm.DB
	cache  ports.TrackingCache
	group  *singleflight.Group
	logger *slog.Logger
}

// NewTrackShipmentQueryHandler builds the handler. A nil cache disables caching.
//
// Example:
//
//	h := queries.NewTrackShipmentQueryHandler(db, redisCache, logger)
//	q, _ := queries.NewTrackShipmentQuery(token)
//	view, err := h.Handle(ctx, q)
func NewTrackShipmentQueryHandler(db *gorm.DB, cache ports.TrackingCache, logger *slog.Logger) TrackShipmentQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return TrackShipmentQueryHandler{
		db:     db,
		cache:  cache,
		group:  &singleflight.Group{},
		logger: logger.With("component", "track-shipment"),
	}
}

func (h TrackShipmentQueryHandler) Handle(ctx context.Context, query TrackShipmentQuery) (*TrackShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	token := query.Token().String()

	if view, ok := h.fromCache(ctx, token); ok {
		return view, nil
	}

	// The generation is read before the load. A status change committed after
	// this point invalidates it, and the store below is then refused. Loads are
	// shared per generation so a request arriving after the change does not
	// join a load that started before it.
	gen, cacheable := h.generation(ctx, token)
	v, err, _ := h.group.Do(token+":"+strconv.FormatInt(gen, 10), func() (any, error) {
		view, loadErr := h.load(ctx, token)
		if loadErr != nil {
			return nil, loadErr
		}
		if cacheable {
			h.store(ctx, token, gen, view)
		}
		return view, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers sharing one load must not alias the history slice.
	shared := v.(*TrackShipmentResponse) //nolint:forcetypeassert // only *TrackShipmentResponse is returned above
	view := *shared
	view.StatusHistory = append([]TrackingEvent(nil), shared.StatusHistory...)
	return &view, nil
}

func (h TrackShipmentQueryHandler) fromCache(ctx context.Context, token string) (*TrackShipmentResponse, bool) {
	if h.cache == nil {
		return nil, false
	}
	raw, ok, err := h.cache.Get(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var view TrackShipmentResponse
	if err = json.Unmarshal(raw, &view); err != nil {
		h.logger.WarnContext(ctx, "tracking cache entry is corrupt", "error", err)
		return nil, false
	}
	return &view, true
}

// generation returns -1 and false when the view must not be cached.
func (h TrackShipmentQueryHandler) generation(ctx context.Context, token string) (int64, bool) {
	if h.cache == nil {
		return -1, false
	}
	gen, err := h.cache.Generation(ctx, token)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache generation read failed", "error", err)
		return -1, false
	}
	return gen, true
}

func (h TrackShipmentQueryHandler) store(ctx context.Context, token string, gen int64, view *TrackShipmentResponse) {
	raw, err := json.Marshal(view)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking view encoding failed", "error", err)
		return
	}
	stored, err := h.cache.Set(ctx, token, gen, raw)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache write failed", "error", err)
		return
	}
	if !stored {
		h.logger.DebugContext(ctx, "tracking view changed while loading, not cached")
	}
}

type trackedShipmentRow struct {
	ID                uuid.UUID
	Reference         string
	OriginText        string
	DestinationText   string
	Status            int
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	RecipientName     string
}

func (h TrackShipmentQueryHandler) load(ctx context.Context, token string) (*TrackShipmentResponse, error) {
	var row trackedShipmentRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			origin_text,
			destination_text,
			status,
			estimated_delivery,
			actual_delivery,
			recipient_name
		FROM shipments
		WHERE tracking_token = ?
	`, token).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("shipment", token)
	}

	view := &TrackShipmentResponse{
		Reference:         row.Reference,
		Origin:            row.OriginText,
		Destination:       row.DestinationText,
		Status:            shipment.Status(row.Status).String(),
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		RecipientName:     row.RecipientName,
		StatusHistory:     make([]TrackingEvent, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			notes,
			address,
			lat,
			lon,
			recorded_at
		FROM shipment_history
		WHERE shipment_id = ?
		ORDER BY recorded_at ASC, id ASC
	`, row.ID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			event  TrackingEvent
			status int
		)
		if err = rows.Scan(&status, &event.Notes, &event.Address, &event.Lat, &event.Lon, &event.RecordedAt); err != nil {
			return nil, err
		}
		event.Status = shipment.Status(status).String()
		event.RecordedAt = event.RecordedAt.UTC()
		view.StatusHistory = append(view.StatusHistory, event)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return view, nil
}
