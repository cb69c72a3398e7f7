package sightings

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/birdlog/internal/dbx"
	"github.com/dmitrijs2005/birdlog/internal/server/models"
)

// TxRepository is the sighting repository the server uses in Postgres mode.
// Reads run directly on the pool; writes run inside a transaction through
// dbx.WithTx with a transactional PostgresRepository.
type TxRepository struct {
	db *sql.DB
}

func NewTxRepository(db *sql.DB) *TxRepository {
	return &TxRepository{db: db}
}

func (r *TxRepository) Create(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	var created *models.Sighting
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		created, txErr = NewPostgresRepository(tx).Create(ctx, s)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *TxRepository) Update(ctx context.Context, s *models.Sighting) (*models.Sighting, error) {
	var updated *models.Sighting
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		updated, txErr = NewPostgresRepository(tx).Update(ctx, s)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *TxRepository) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewPostgresRepository(tx).Delete(ctx, id)
	})
}

func (r *TxRepository) FindByID(ctx context.Context, id int64) (*models.Sighting, error) {
	return NewPostgresRepository(r.db).FindByID(ctx, id)
}

func (r *TxRepository) FindAll(ctx context.Context) ([]*models.Sighting, error) {
	return NewPostgresRepository(r.db).FindAll(ctx)
}
