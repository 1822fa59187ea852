package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rakshak-backend/internal/domain"
	"rakshak-backend/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, request_id, volunteer_id, photo, status, volunteer_remarks, admin_remarks, created_at, deadline`

func (r *taskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	t := &domain.Task{}
	var volunteerRemarks, adminRemarks sql.NullString
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.TaskRequestID, &t.VolunteerID, &t.Photo, &t.Status, &volunteerRemarks, &adminRemarks, &t.CreatedAt, &t.Deadline)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	t.VolunteerRemarks = volunteerRemarks.String
	t.AdminRemarks = adminRemarks.String
	return t, nil
}

func (r *taskRepository) ListAvailable(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE status = $1 AND volunteer_id IS NULL ORDER BY created_at`
	return r.list(ctx, query, domain.TaskStatusPending)
}

func (r *taskRepository) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE volunteer_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, volunteerID)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var volunteerRemarks, adminRemarks sql.NullString
		if err := rows.Scan(&t.ID, &t.TaskRequestID, &t.VolunteerID, &t.Photo, &t.Status, &volunteerRemarks, &adminRemarks, &t.CreatedAt, &t.Deadline); err != nil {
			return nil, err
		}
		t.VolunteerRemarks = volunteerRemarks.String
		t.AdminRemarks = adminRemarks.String
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Assign is the accept compare-and-swap: the WHERE clause re-checks the
// unassigned PENDING state so two concurrent accepts cannot both win.
func (r *taskRepository) Assign(ctx context.Context, id, volunteerID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET volunteer_id = $1, status = $2 WHERE id = $3 AND volunteer_id IS NULL AND status = $4`,
		volunteerID, domain.TaskStatusInProgress, id, domain.TaskStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrStaleState
	}
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *taskRepository) UpdateVolunteerRemarks(ctx context.Context, id int32, remarks string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET volunteer_remarks = $1 WHERE id = $2`, remarks, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *taskRepository) UpdateAdminRemarks(ctx context.Context, id int32, remarks string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET admin_remarks = $1 WHERE id = $2`, remarks, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
