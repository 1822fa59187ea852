package postgres_test

import (
	"context"
	"testing"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
	"rakshak-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestResourceRequestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewResourceRequestRepository(db)
	ctx := context.Background()

	req := &domain.ResourceRequest{
		UserID:            1,
		ResourceID:        2,
		Location:          "Sector 4",
		Status:            domain.ResourceRequestStatusPending,
		RequestedQuantity: 10,
	}

	mock.ExpectQuery("INSERT INTO resource_requests").
		WithArgs(req.UserID, req.ResourceID, req.Location, req.Status, req.RequestedQuantity, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), req.ID)
}

func TestResourceRequestRepository_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("SufficientQuantityCommits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewResourceRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT resource_id, requested_quantity FROM resource_requests").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"resource_id", "requested_quantity"}).AddRow(2, 10))
		mock.ExpectQuery("SELECT available_quantity FROM resources WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"available_quantity"}).AddRow(25))
		mock.ExpectExec("UPDATE resources SET available_quantity = available_quantity - \\$1").
			WithArgs(int32(10), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE resource_requests SET status = \\$1").
			WithArgs(domain.ResourceRequestStatusAllocated, int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		allocated, err := repo.Allocate(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, allocated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsufficientQuantityRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewResourceRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT resource_id, requested_quantity FROM resource_requests").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"resource_id", "requested_quantity"}).AddRow(2, 100))
		mock.ExpectQuery("SELECT available_quantity FROM resources WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"available_quantity"}).AddRow(25))
		mock.ExpectRollback()

		allocated, err := repo.Allocate(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, allocated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownRequest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewResourceRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT resource_id, requested_quantity FROM resource_requests").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"resource_id", "requested_quantity"}))
		mock.ExpectRollback()

		allocated, err := repo.Allocate(ctx, 404)
		assert.False(t, allocated)
		assert.ErrorIs(t, err, repository.ErrNoRows)
	})
}
