package services

import (
	"context"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/view"
)

// AilmentRemote adapts the ailment service to the view engine's remote write
// surface, for sessions running in the same process as the service.
type AilmentRemote struct {
	service *AilmentService
}

// NewAilmentRemote creates an in-process remote over the ailment service
func NewAilmentRemote(service *AilmentService) view.Remote {
	return &AilmentRemote{service: service}
}

// List retrieves every aggregate
func (r *AilmentRemote) List(ctx context.Context) ([]entities.Ailment, error) {
	return r.service.List(ctx)
}

// Create stores a new aggregate under its client-generated id
func (r *AilmentRemote) Create(ctx context.Context, ailment entities.Ailment) error {
	_, err := r.service.Create(ctx, CreateAilmentInput{
		ID:          ailment.ID,
		Ailment:     ailment.Ailment,
		Treatments:  ailment.Treatments,
		Diagnostics: ailment.Diagnostics,
	})
	return err
}

// Update replaces an existing aggregate wholesale
func (r *AilmentRemote) Update(ctx context.Context, ailment entities.Ailment) error {
	details := ailment.Ailment
	treatments := ailment.Treatments
	if treatments == nil {
		treatments = []entities.Treatment{}
	}
	diagnostics := ailment.Diagnostics
	if diagnostics == nil {
		diagnostics = []entities.Diagnostic{}
	}

	_, err := r.service.Update(ctx, ailment.ID, UpdateAilmentInput{
		Ailment:     &details,
		Treatments:  treatments,
		Diagnostics: diagnostics,
	})
	return err
}

// Delete removes the aggregate with the given id
func (r *AilmentRemote) Delete(ctx context.Context, id string) error {
	_, err := r.service.Delete(ctx, id)
	return err
}
