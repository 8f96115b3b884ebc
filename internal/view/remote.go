package view

import (
	"context"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
)

// Remote is the request/response surface a session writes through. Create and
// Update carry the entire mutated aggregate; Delete carries only the id. The
// transport behind it (HTTP, in-process service) is a collaborator, not part
// of the engine.
type Remote interface {
	// List retrieves every aggregate, used for the initial load and for
	// re-deriving ground truth after a failed update
	List(ctx context.Context) ([]entities.Ailment, error)

	// Create stores a new aggregate under its client-generated id
	Create(ctx context.Context, ailment entities.Ailment) error

	// Update replaces an existing aggregate wholesale
	Update(ctx context.Context, ailment entities.Ailment) error

	// Delete removes the aggregate with the given id
	Delete(ctx context.Context, id string) error
}
