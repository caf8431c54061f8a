package database

import (
	"context"
	"shop-api/models"
	"strings"

	"gorm.io/gorm"
)

// ==================== USER OPERATIONS ====================

// CreateUsers inserts users whose email is not taken yet and returns the ones
// created. Duplicates, in the store or within the batch, are skipped.
func (r *Repository) CreateUsers(ctx context.Context, users []models.User) ([]models.User, error) {
	created := make([]models.User, 0, len(users))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		emails := make([]string, 0, len(users))
		for _, u := range users {
			emails = append(emails, strings.ToLower(u.Email))
		}

		var existing []string
		if err := tx.Model(&models.User{}).Where("LOWER(email) IN ?", emails).Pluck("LOWER(email)", &existing).Error; err != nil {
			return err
		}

		seen := make(map[string]bool, len(existing)+len(users))
		for _, e := range existing {
			seen[e] = true
		}

		for _, u := range users {
			key := strings.ToLower(u.Email)
			if seen[key] {
				continue
			}
			seen[key] = true
			created = append(created, u)
		}

		if len(created) == 0 {
			return nil
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return created, nil
}

// ListUsers returns users newest first, filtered by email when set
func (r *Repository) ListUsers(ctx context.Context, email string) ([]models.User, error) {
	if email == "" {
		return listRecent[models.User](ctx, r.db.DB)
	}

	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return findByID[models.User](ctx, r.db.DB, id)
}

// UpdateUser applies the given columns; unknown keys are the caller's bug
func (r *Repository) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	return updateByID[models.User](ctx, r.db.DB, id, fields)
}

func (r *Repository) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[models.User](ctx, r.db.DB, id)
}
