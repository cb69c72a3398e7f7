// Package services contains the application services sitting between the
// transport layer and the repositories.
package services

import (
	"context"

	"github.com/dmitrijs2005/birdlog/internal/server/models"
	"github.com/dmitrijs2005/birdlog/internal/server/repositories/sightings"
	"github.com/dmitrijs2005/birdlog/internal/server/serialize"
	"github.com/jonboulle/clockwork"
)

// PublicSightingFields is the fixed response policy of the public API:
// server-managed timestamps stay internal.
var PublicSightingFields = serialize.Exclude(serialize.FieldCreatedAt, serialize.FieldUpdatedAt)

// SightingService orchestrates the sighting repository and applies the
// response field policy. Timestamps come from the injected clock so tests
// can pin them.
type SightingService struct {
	repo  sightings.Repository
	clock clockwork.Clock
}

func NewSightingService(repo sightings.Repository, clock clockwork.Clock) *SightingService {
	return &SightingService{repo: repo, clock: clock}
}

// List returns every sighting as a filtered payload, in store order.
func (s *SightingService) List(ctx context.Context) ([]serialize.Payload, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return serialize.Sightings(list, PublicSightingFields), nil
}

// Get returns a single filtered payload. Passes common.ErrorNotFound
// through for the transport layer to translate.
func (s *SightingService) Get(ctx context.Context, id int64) (serialize.Payload, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return serialize.Sighting(record, PublicSightingFields), nil
}

// Create stores a new sighting with both timestamps set to the current
// clock reading and returns its filtered payload.
func (s *SightingService) Create(ctx context.Context, name, species string) (serialize.Payload, error) {
	now := s.clock.Now().UTC()
	record, err := s.repo.Create(ctx, &models.Sighting{
		Name:      name,
		Species:   species,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return serialize.Sighting(record, PublicSightingFields), nil
}

// Update rewrites name and species of an existing sighting, advancing only
// the update timestamp.
func (s *SightingService) Update(ctx context.Context, id int64, name, species string) (serialize.Payload, error) {
	record, err := s.repo.Update(ctx, &models.Sighting{
		ID:        id,
		Name:      name,
		Species:   species,
		UpdatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return serialize.Sighting(record, PublicSightingFields), nil
}

// Delete removes a sighting by id.
func (s *SightingService) Delete(ctx context.Context, id int64) (*serialize.DeletedObjectResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return serialize.DeletedObject(id), nil
}
