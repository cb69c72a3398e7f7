package sightings

import (
	"context"

	"github.com/dmitrijs2005/birdlog/internal/server/models"
)

// Repository is the record store for sightings. Lookups of ids that do not
// resolve to a record return common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, s *models.Sighting) (*models.Sighting, error)
	Update(ctx context.Context, s *models.Sighting) (*models.Sighting, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*models.Sighting, error)
	FindAll(ctx context.Context) ([]*models.Sighting, error)
}
