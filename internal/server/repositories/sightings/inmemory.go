package sightings

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/birdlog/internal/common"
	"github.com/dmitrijs2005/birdlog/internal/server/models"
)

// InMemoryRepository is a mutex-guarded map of sightings. Ids are assigned
// from a monotonically increasing counter, mirroring the database sequence.
// Records are copied on the way in and out so callers never share memory
// with the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]*models.Sighting
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int64]*models.Sighting), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *s
	created.ID = r.nextID
	r.nextID++
	r.items[created.ID] = &created

	result := created
	return &result, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[s.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	stored.Name = s.Name
	stored.Species = s.Species
	stored.UpdatedAt = s.UpdatedAt

	result := *stored
	return &result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (*models.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *stored
	return &result, nil
}

func (r *InMemoryRepository) FindAll(ctx context.Context) ([]*models.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Sighting, 0, len(r.items))
	for _, stored := range r.items {
		item := *stored
		result = append(result, &item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
