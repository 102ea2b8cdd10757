package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// ShareRepository defines the interface for shared result persistence
type ShareRepository interface {
	// Create stores a new shared result
	Create(ctx context.Context, result *entities.SharedResult) error

	// FindByID finds a shared result by ID, returning entities.ErrShareNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*entities.SharedResult, error)
}
