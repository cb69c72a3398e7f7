package sightings

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/birdlog/internal/common"
	"github.com/dmitrijs2005/birdlog/internal/server/models"
)

func newTxRepoWithMock(t *testing.T) (*TxRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewTxRepository(db), mock, db
}

func TestTxCreate_CommitsOnSuccess(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	now := ts(t, "2019-05-09T21:51:41.543Z")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT\s+INTO\s+sightings`).
		WithArgs("Common Starling", "Sturnus Vulgaris", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	got, err := repo.Create(context.Background(), &models.Sighting{Name: "Common Starling", Species: "Sturnus Vulgaris", CreatedAt: now, UpdatedAt: now})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("unexpected sighting: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxCreate_RollsBackOnError(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT\s+INTO\s+sightings`).
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &models.Sighting{Name: "Great Tit", Species: "Parus Major"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxUpdate_CommitsOnSuccess(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	created := ts(t, "2019-05-09T21:51:41.543Z")
	updated := ts(t, "2019-06-01T08:00:00Z")
	rows := sqlmock.NewRows([]string{"id", "name", "species", "created_at", "updated_at"}).
		AddRow(int64(3), "Common Starling", "Sturnus Vulgaris", created, updated)

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE\s+sightings`).
		WithArgs("Common Starling", "Sturnus Vulgaris", updated, int64(3)).
		WillReturnRows(rows)
	mock.ExpectCommit()

	got, err := repo.Update(context.Background(), &models.Sighting{ID: 3, Name: "Common Starling", Species: "Sturnus Vulgaris", UpdatedAt: updated})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected sighting: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxUpdate_RollsBackOnMissingRow(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE\s+sightings`).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), &models.Sighting{ID: 99})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxDelete_CommitsOnSuccess(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE\s+FROM\s+sightings`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxDelete_RollsBackOnMissingRow(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE\s+FROM\s+sightings`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTxFindByID_ReadsWithoutTransaction(t *testing.T) {
	repo, mock, db := newTxRepoWithMock(t)
	defer db.Close()

	created := ts(t, "2019-05-09T21:51:41.543Z")
	rows := sqlmock.NewRows([]string{"id", "name", "species", "created_at", "updated_at"}).
		AddRow(int64(3), "Common Starling", "Sturnus Vulgaris", created, created)
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*species`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("unexpected sighting: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
