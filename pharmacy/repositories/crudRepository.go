package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CrudRepository implements the storage contract shared by every plain
// entity: create, read by id, read all, full-record update and delete.
// Entities with extra lookups get their own repository on top of it.
type CrudRepository[T any] struct {
	db       *gorm.DB
	idColumn string
	preloads []string
}

func NewCrudRepository[T any](db *gorm.DB, idColumn string, preloads ...string) *CrudRepository[T] {
	return &CrudRepository[T]{db: db, idColumn: idColumn, preloads: preloads}
}

func (r *CrudRepository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *CrudRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Omit(r.preloads...).Create(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to create record: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *CrudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var record T
	err := r.query(ctx).First(&record, r.idColumn+" = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

func (r *CrudRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.query(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return records, nil
}

// Update performs a full-record replace. The record must already exist.
func (r *CrudRepository[T]) Update(ctx context.Context, id int64, record *T) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit(r.preloads...).Save(record).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("failed to update record: %w", ErrConflict)
		}
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (r *CrudRepository[T]) Delete(ctx context.Context, id int64) error {
	if err := r.exists(ctx, id); err != nil {
		return err
	}
	var record T
	if err := r.db.WithContext(ctx).Delete(&record, r.idColumn+" = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (r *CrudRepository[T]) exists(ctx context.Context, id int64) error {
	var record T
	err := r.db.WithContext(ctx).Select(r.idColumn).First(&record, r.idColumn+" = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check record existence: %w", err)
	}
	return nil
}

// isDuplicate reports whether the error stems from a unique constraint
// violation.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
