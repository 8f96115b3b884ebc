package database

import (
	"context"
	"sync"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
)

// MemoryAdapter implements the ailment repository in process memory. It backs
// local development without Postgres and the package tests.
type MemoryAdapter struct {
	mu    sync.RWMutex
	items map[string]entities.Ailment
	order []string
}

// NewMemoryAdapter creates a new in-memory ailment repository
func NewMemoryAdapter() repositories.AilmentRepository {
	return &MemoryAdapter{
		items: make(map[string]entities.Ailment),
	}
}

// Get retrieves an aggregate by id, returning nil when absent
func (a *MemoryAdapter) Get(ctx context.Context, id string) (*entities.Ailment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ailment, ok := a.items[id]
	if !ok {
		return nil, nil
	}
	clone := ailment.Clone()
	return &clone, nil
}

// Put stores the whole aggregate, overwriting any existing document
func (a *MemoryAdapter) Put(ctx context.Context, ailment entities.Ailment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.items[ailment.ID]; !exists {
		a.order = append(a.order, ailment.ID)
	}
	a.items[ailment.ID] = ailment.Clone()
	return nil
}

// Delete removes the aggregate with the given id
func (a *MemoryAdapter) Delete(ctx context.Context, id string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.items[id]; !ok {
		return false, nil
	}
	delete(a.items, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Scan returns every stored aggregate in insertion order
func (a *MemoryAdapter) Scan(ctx context.Context) ([]entities.Ailment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ailments := make([]entities.Ailment, 0, len(a.order))
	for _, id := range a.order {
		ailments = append(ailments, a.items[id].Clone())
	}
	return ailments, nil
}
