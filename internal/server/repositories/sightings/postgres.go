// Package sightings provides the persistence repositories for bird-sighting
// records: a PostgreSQL-backed implementation and an in-memory one used by
// tests and the in-memory server mode.
package sightings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/birdlog/internal/common"
	"github.com/dmitrijs2005/birdlog/internal/dbx"
	"github.com/dmitrijs2005/birdlog/internal/server/models"
)

// PostgresRepository implements sighting storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new sighting and returns it with the id assigned by the
// database sequence.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	query := `
		INSERT INTO sightings (name, species, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	created := *s
	err := r.db.QueryRowContext(ctx, query, s.Name, s.Species, s.CreatedAt, s.UpdatedAt).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &created, nil
}

// Update rewrites the mutable fields of an existing sighting and returns the
// stored row. Returns common.ErrorNotFound when the id does not resolve.
func (r *PostgresRepository) Update(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	query := `
		UPDATE sightings SET name = $1, species = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, name, species, created_at, updated_at
	`
	var updated models.Sighting
	err := r.db.QueryRowContext(ctx, query, s.Name, s.Species, s.UpdatedAt, s.ID).Scan(
		&updated.ID, &updated.Name, &updated.Species, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &updated, nil
}

// Delete removes a sighting by id. Returns common.ErrorNotFound when no row
// matches.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sightings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// FindByID returns the sighting with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Sighting, error) {
	query := `SELECT id, name, species, created_at, updated_at FROM sightings WHERE id = $1`

	var s models.Sighting
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Species, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}

// FindAll returns every sighting ordered by id ascending.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.Sighting, error) {
	query := `SELECT id, name, species, created_at, updated_at FROM sightings ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sightings: %w", err)
	}
	defer rows.Close()

	var result []*models.Sighting
	for rows.Next() {
		var item models.Sighting
		if err := rows.Scan(&item.ID, &item.Name, &item.Species, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
