package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/repositories"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

// CreateAilmentInput carries a new aggregate. A client-supplied id is honored
// (create-or-overwrite); a missing id is generated server-side.
type CreateAilmentInput struct {
	ID          string                  `json:"id,omitempty"`
	Ailment     entities.AilmentDetails `json:"ailment"`
	Treatments  []entities.Treatment    `json:"treatments"`
	Diagnostics []entities.Diagnostic   `json:"diagnostics"`
}

// UpdateAilmentInput carries a partial update. Each top-level group is
// wholesale-replaced when present and left as-is when absent; there is no
// per-nested-entity patching.
type UpdateAilmentInput struct {
	Ailment     *entities.AilmentDetails `json:"ailment"`
	Treatments  []entities.Treatment     `json:"treatments"`
	Diagnostics []entities.Diagnostic    `json:"diagnostics"`
}

// AilmentService implements the aggregate operations: every write persists
// the whole aggregate and publishes the matching push event.
type AilmentService struct {
	repo repositories.AilmentRepository
	bus  providers.EventBus
}

// NewAilmentService creates a new ailment service
func NewAilmentService(repo repositories.AilmentRepository, bus providers.EventBus) *AilmentService {
	return &AilmentService{repo: repo, bus: bus}
}

// List returns every stored aggregate
func (s *AilmentService) List(ctx context.Context) ([]entities.Ailment, error) {
	return s.repo.Scan(ctx)
}

// Get returns the aggregate with the given id, or nil when absent
func (s *AilmentService) Get(ctx context.Context, id string) (*entities.Ailment, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new aggregate and publishes a CREATE event. A supplied id
// overwrites any existing aggregate with that id.
func (s *AilmentService) Create(ctx context.Context, input CreateAilmentInput) (entities.Ailment, error) {
	ailment := entities.NormalizeAilment(entities.Ailment{
		ID:          input.ID,
		Ailment:     input.Ailment,
		Treatments:  input.Treatments,
		Diagnostics: input.Diagnostics,
	})

	s.logValidation(ailment)

	if err := s.repo.Put(ctx, ailment); err != nil {
		return entities.Ailment{}, err
	}

	s.publish(ctx, entities.NewAilmentCreatedEvent(ailment))
	return ailment, nil
}

// Update replaces the present field groups of an existing aggregate and
// publishes an UPDATE event. Returns a not-found error when the aggregate
// does not exist.
func (s *AilmentService) Update(ctx context.Context, id string, input UpdateAilmentInput) (*entities.Ailment, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("ailment " + id + " not found")
	}

	updated := entities.Ailment{
		ID:          id,
		Ailment:     existing.Ailment,
		Treatments:  existing.Treatments,
		Diagnostics: existing.Diagnostics,
	}
	if input.Ailment != nil {
		updated.Ailment = *input.Ailment
	}
	if input.Treatments != nil {
		updated.Treatments = input.Treatments
	}
	if input.Diagnostics != nil {
		updated.Diagnostics = input.Diagnostics
	}
	updated = entities.NormalizeAilment(updated)

	s.logValidation(updated)

	if err := s.repo.Put(ctx, updated); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.NewAilmentUpdatedEvent(updated))
	return &updated, nil
}

// Delete removes the aggregate and publishes a DELETE event carrying only the
// id and outcome. Deleting an absent aggregate is not an error.
func (s *AilmentService) Delete(ctx context.Context, id string) (entities.DeleteResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return entities.DeleteResponse{ID: id, Success: false, Message: "failed to delete ailment"}, err
	}

	result := entities.DeleteResponse{
		ID:      id,
		Success: deleted,
		Message: "ailment deleted successfully",
	}
	if !deleted {
		result.Message = "ailment not found"
	}

	if deleted {
		s.publish(ctx, entities.NewAilmentDeletedEvent(result))
	}
	return result, nil
}

// logValidation records advisory validation findings. Failed validation does
// not block a save.
func (s *AilmentService) logValidation(ailment entities.Ailment) {
	if findings := entities.ValidateAilment(ailment); len(findings) > 0 {
		log.Warn().Str("ailment_id", ailment.ID).Strs("findings", findings).
			Msg("Ailment saved with validation findings")
	}
}

func (s *AilmentService) publish(ctx context.Context, event *entities.AilmentEvent) {
	if s.bus == nil {
		return
	}
	channel := providers.EventChannelFor(event.EventType)
	if err := s.bus.Publish(ctx, channel, event); err != nil {
		log.Warn().Err(err).Str("channel", channel).Str("ailment_id", event.AilmentID).
			Msg("Failed to publish ailment event")
	}
}
