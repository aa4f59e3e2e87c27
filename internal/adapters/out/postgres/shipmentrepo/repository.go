package shipmentrepo

import (
	"context"

	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const entityName = "shipment"

type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new shipment. A reference or tracking token that is already
// taken is reported as a conflict.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.TranslateWriteError(err, entityName, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++
	if err := pgutil.UpdateVersioned(ctx, r.db, &dto, entityName, aggregate.ID(), aggregate.Version()); err != nil {
		return err
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgutil.TranslateReadError(err, entityName, id.String())
	}

	return toDomain(dto)
}

// GetByIDs loads all shipments in one query and returns them in the order
// of ids. Duplicate ids are collapsed to their first occurrence.
func (r *GormShipmentRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*shipment.Shipment, error) {
	if len(ids) == 0 {
		return []*shipment.Shipment{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		keys = append(keys, id.String())
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(keys)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]ShipmentDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID.String()] = dto
	}

	seen := make(map[string]struct{}, len(ids))
	result := make([]*shipment.Shipment, 0, len(ids))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		dto, ok := byID[key]
		if !ok {
			return nil, errs.NewObjectNotFoundError(entityName, key)
		}
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, nil
}

func (r *GormShipmentRepository) GetByTrackingToken(
	ctx context.Context,
	token shipment.TrackingToken,
) (*shipment.Shipment, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_token = ?", token.String()).Error; err != nil {
		return nil, pgutil.TranslateReadError(err, entityName, token.String())
	}

	return toDomain(dto)
}

// GormHistoryRepository appends and lists shipment status history rows.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry shipment.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	if err := r.db.WithContext(ctx).Omit("Shipment").Create(&dto).Error; err != nil {
		return pgutil.TranslateWriteError(err, "shipment history", entry.ID())
	}
	return nil
}

func (r *GormHistoryRepository) ListByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]shipment.HistoryEntry, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("recorded_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]shipment.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
