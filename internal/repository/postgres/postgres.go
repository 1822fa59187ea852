package postgres

import (
	"database/sql"

	"rakshak-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DisasterRepository
	repository.ResourceRepository
	repository.ResourceRequestRepository
	repository.TaskRequestRepository
	repository.TaskRepository
	repository.VolunteerApplicationRepository
	repository.NotificationRepository
	repository.PasswordResetTokenRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                             db,
		UserRepository:                 NewUserRepository(db),
		DisasterRepository:             NewDisasterRepository(db),
		ResourceRepository:             NewResourceRepository(db),
		ResourceRequestRepository:      NewResourceRequestRepository(db),
		TaskRequestRepository:          NewTaskRequestRepository(db),
		TaskRepository:                 NewTaskRepository(db),
		VolunteerApplicationRepository: NewVolunteerApplicationRepository(db),
		NotificationRepository:         NewNotificationRepository(db),
		PasswordResetTokenRepository:   NewPasswordResetTokenRepository(db),
	}
}
