package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no record matches the identifier
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated
	ErrDuplicate = errors.New("record already exists")
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// translate maps GORM errors onto the repository's sentinel errors
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// createAll inserts items in one transaction, so a batch is all-or-nothing
func createAll[T any](ctx context.Context, db *gorm.DB, items []T) ([]T, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// listRecent returns all records, most recently created first
func listRecent[T any](ctx context.Context, db *gorm.DB, preloads ...string) ([]T, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	records := make([]T, 0)
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint, preloads ...string) (*T, error) {
	q := db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var record T
	if err := q.First(&record, id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

// updateByID applies fields (column name to value) and returns the reloaded record
func updateByID[T any](ctx context.Context, db *gorm.DB, id uint, fields map[string]any, preloads ...string) (*T, error) {
	record, err := findByID[T](ctx, db, id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := db.WithContext(ctx).Model(record).Updates(fields).Error; err != nil {
			return nil, translate(err)
		}
	}

	return findByID[T](ctx, db, id, preloads...)
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id uint) error {
	result := db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
