package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/birdlog/internal/server/repositories/sightings"
)

type InMemoryRepositoryManager struct {
	sightings sightings.Repository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Sightings() sightings.Repository {
	return m.sightings
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{sightings: sightings.NewInMemoryRepository()}
}
