package postgres_test

import (
	"context"
	"testing"
	"time"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
	"rakshak-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestTaskRequestRepository_Approve(t *testing.T) {
	ctx := context.Background()
	deadline := time.Now().Add(7 * 24 * time.Hour)

	t.Run("PendingRequestCreatesTask", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewTaskRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE task_requests SET status = \\$1").
			WithArgs(domain.TaskRequestStatusApproved, sqlmock.AnyArg(), int32(3), domain.TaskRequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs(int32(3), "default_path.jpg", domain.TaskStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		task, err := repo.Approve(ctx, 3, "default_path.jpg", deadline)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), task.ID)
		assert.Equal(t, int32(3), task.TaskRequestID)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyDecidedReturnsStaleState", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewTaskRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE task_requests SET status = \\$1").
			WithArgs(domain.TaskRequestStatusApproved, sqlmock.AnyArg(), int32(3), domain.TaskRequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM task_requests").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("APPROVED"))
		mock.ExpectRollback()

		task, err := repo.Approve(ctx, 3, "default_path.jpg", deadline)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, repository.ErrStaleState)
	})

	t.Run("MissingRequestReturnsNoRows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewTaskRequestRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE task_requests SET status = \\$1").
			WithArgs(domain.TaskRequestStatusApproved, sqlmock.AnyArg(), int32(404), domain.TaskRequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM task_requests").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		task, err := repo.Approve(ctx, 404, "default_path.jpg", deadline)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, repository.ErrNoRows)
	})
}

func TestTaskRequestRepository_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingRequestRejected", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewTaskRequestRepository(db)

		mock.ExpectExec("UPDATE task_requests SET status = \\$1").
			WithArgs(domain.TaskRequestStatusRejected, sqlmock.AnyArg(), int32(3), domain.TaskRequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Reject(ctx, 3))
	})

	t.Run("AlreadyDecidedReturnsStaleState", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewTaskRequestRepository(db)

		mock.ExpectExec("UPDATE task_requests SET status = \\$1").
			WithArgs(domain.TaskRequestStatusRejected, sqlmock.AnyArg(), int32(3), domain.TaskRequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM task_requests").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("REJECTED"))

		assert.ErrorIs(t, repo.Reject(ctx, 3), repository.ErrStaleState)
	})
}
