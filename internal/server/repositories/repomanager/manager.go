// Package repomanager wires concrete repository implementations behind a
// single interface so the application can swap the PostgreSQL store for the
// in-memory one.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/birdlog/internal/server/repositories/sightings"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Sightings() sightings.Repository
}
