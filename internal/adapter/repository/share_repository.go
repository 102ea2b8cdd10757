package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// ShareRepository implements the share repository interface using GORM
type ShareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Create stores a shared result
func (r *ShareRepository) Create(ctx context.Context, result *entities.SharedResult) error {
	if result == nil {
		return errors.New("shared result cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create shared result: %w", err)
	}
	return nil
}

// FindByID finds a shared result by ID
func (r *ShareRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.SharedResult, error) {
	var result entities.SharedResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to find shared result: %w", err)
	}
	return &result, nil
}
