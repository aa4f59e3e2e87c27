// Package pgutil holds the write helpers shared by the GORM repositories:
// translating driver errors into errs types and version-checked updates.
package pgutil

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// TranslateWriteError maps unique violations to errs.ConflictError and
// passes every other error through unchanged.
func TranslateWriteError(err error, entity string, id kernel.UUID) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause(entity, id.String(), err)
	}
	return err
}

// TranslateReadError maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError.
func TranslateReadError(err error, entity string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return err
}

// UpdateVersioned stores every column of dto, which must already carry
// expected+1 as its version, but only if the stored row still has version
// expected. Associations are left untouched.
//
// A missing row yields errs.ObjectNotFoundError, a stale version yields
// errs.ConflictError.
func UpdateVersioned(ctx context.Context, db *gorm.DB, dto any, entity string, id kernel.UUID, expected int) error {
	result := db.WithContext(ctx).
		Model(dto).
		Where("version = ?", expected).
		Select("*").
		Omit(clause.Associations).
		Updates(dto)
	if result.Error != nil {
		return TranslateWriteError(result.Error, entity, id)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(dto).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError(entity, id.String())
	}
	return errs.NewConflictError(entity, id.String())
}

// NullableID converts an optional reference into its column value.
func NullableID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func ParseNullableID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // unassigned reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
