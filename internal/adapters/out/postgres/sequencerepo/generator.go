// Package sequencerepo hands out yearly document sequence numbers backed by
// a counter row per (name, year).
package sequencerepo

import (
	"context"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type SequenceDTO struct {
	Name  string `gorm:"type:varchar(16);primaryKey"`
	Year  int    `gorm:"type:int;primaryKey;autoIncrement:false"`
	Value int64  `gorm:"type:bigint;not null"`
}

func (SequenceDTO) TableName() string {
	return "document_sequences"
}

type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator uses db, which should be the transaction of the current unit of work.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next increments and returns the counter for (name, year), creating it at 1.
// The counter row stays locked until the caller's transaction ends.
func (g *GormSequenceGenerator) Next(ctx context.Context, name string, year int) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errs.NewValueIsRequiredError("sequence name")
	}
	if year < 1 {
		return 0, errs.NewValueIsOutOfRangeError("year", year, 1, "unbounded")
	}

	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (name, year, value)
		VALUES (?, ?, 1)
		ON CONFLICT (name, year) DO UPDATE SET value = document_sequences.value + 1
		RETURNING value`, name, year).Scan(&value).Error
	if err != nil {
		return 0, fmt.Errorf("next %s sequence for %d: %w", name, year, err)
	}
	return value, nil
}
