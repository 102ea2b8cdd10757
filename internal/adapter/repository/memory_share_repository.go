package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

// MemoryShareRepository keeps shared results in process memory. Results are
// lost on restart; it backs the service when no database is configured.
type MemoryShareRepository struct {
	mu      sync.RWMutex
	results map[uuid.UUID]entities.SharedResult
}

// NewMemoryShareRepository creates an empty in-memory share repository
func NewMemoryShareRepository() *MemoryShareRepository {
	return &MemoryShareRepository{results: make(map[uuid.UUID]entities.SharedResult)}
}

// Create stores a copy of result
func (r *MemoryShareRepository) Create(_ context.Context, result *entities.SharedResult) error {
	if result == nil {
		return errors.New("shared result cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *result
	cp.Actions = append(cp.Actions[:0:0], result.Actions...)
	r.results[result.ID] = cp
	return nil
}

// FindByID returns a copy of the stored result
func (r *MemoryShareRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.SharedResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[id]
	if !ok {
		return nil, entities.ErrShareNotFound
	}
	return &result, nil
}
