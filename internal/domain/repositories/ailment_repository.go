package repositories

import (
	"context"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
)

// AilmentRepository is the keyed document store holding ailment aggregates.
// The aggregate is the unit of persistence: Put always writes the whole
// document, and Scan is the only bulk-read primitive (no pagination, no
// filtering).
type AilmentRepository interface {
	// Get retrieves an aggregate by id, returning nil when absent
	Get(ctx context.Context, id string) (*entities.Ailment, error)

	// Put stores the whole aggregate, overwriting any existing document
	Put(ctx context.Context, ailment entities.Ailment) error

	// Delete removes the aggregate with the given id, reporting whether a
	// document was removed
	Delete(ctx context.Context, id string) (bool, error)

	// Scan returns every stored aggregate
	Scan(ctx context.Context) ([]entities.Ailment, error)
}
