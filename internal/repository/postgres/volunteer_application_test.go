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

func TestVolunteerApplicationRepository_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("PromotesUserInSameTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewVolunteerApplicationRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE volunteer_applications SET status = \\$1").
			WithArgs(domain.ApplicationStatusApproved, int32(4), domain.ApplicationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET role = \\$1").
			WithArgs(domain.UserRoleVolunteer, int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Approve(ctx, 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyDecidedReturnsStaleState", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewVolunteerApplicationRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE volunteer_applications SET status = \\$1").
			WithArgs(domain.ApplicationStatusApproved, int32(4), domain.ApplicationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM volunteer_applications").
			WithArgs(int32(4)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("APPROVED"))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Approve(ctx, 4), repository.ErrStaleState)
	})

	t.Run("MissingUserAbortsBothWrites", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewVolunteerApplicationRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE volunteer_applications SET status = \\$1").
			WithArgs(domain.ApplicationStatusApproved, int32(4), domain.ApplicationStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE users SET role = \\$1").
			WithArgs(domain.UserRoleVolunteer, int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Approve(ctx, 4), repository.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVolunteerApplicationRepository_Reject(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := postgres.NewVolunteerApplicationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE volunteer_applications SET status = \\$1").
		WithArgs(domain.ApplicationStatusRejected, int32(4), domain.ApplicationStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Reject(ctx, 4))
}
