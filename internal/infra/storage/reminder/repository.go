package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
)

var reminderColumns = []string{
	"id",
	"vehicle_id",
	"title",
	"description",
	"due_date",
	"type",
	"completed",
	"urgent",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с напоминаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое напоминание
func (r *Repository) Create(ctx context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reminders").
		Columns(reminderColumns...).
		Values(
			rem.ID,
			rem.VehicleID,
			rem.Title,
			rem.Description,
			rem.DueDate,
			rem.Type,
			rem.Completed,
			rem.Urgent,
			rem.CreatedAt,
			rem.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rem, nil
}

// GetByID получает напоминание по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceReminder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reminderColumns...).
		From("reminders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rem domain.ServiceReminder
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rem.ID,
		&rem.VehicleID,
		&rem.Title,
		&rem.Description,
		&rem.DueDate,
		&rem.Type,
		&rem.Completed,
		&rem.Urgent,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reminder: %v", ErrScanRow, err)
	}

	return &rem, nil
}

// List получает все напоминания, включая выполненные (для экспорта)
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceReminder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reminderColumns...).
		From("reminders").
		OrderBy("due_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReminders(rows, "List")
}

// ListIncomplete получает незавершённые напоминания, отсортированные
// по сроку (ASC). Опционально фильтрует по автомобилю.
func (r *Repository) ListIncomplete(ctx context.Context, vehicleID *string) ([]*domain.ServiceReminder, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reminderColumns...).
		From("reminders").
		Where(squirrel.Eq{"completed": false}).
		OrderBy("due_date ASC")

	if vehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_id": *vehicleID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListIncomplete - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListIncomplete - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReminders(rows, "ListIncomplete")
}

// ExistsIncompleteByTitle проверяет наличие незавершённого напоминания
// с данным заголовком у автомобиля (дедупликация smart-напоминаний)
func (r *Repository) ExistsIncompleteByTitle(ctx context.Context, vehicleID, title string) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reminders").
		Where(squirrel.Eq{"vehicle_id": vehicleID, "title": title, "completed": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsIncompleteByTitle - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsIncompleteByTitle - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// MarkCompleted помечает напоминание выполненным
func (r *Repository) MarkCompleted(ctx context.Context, id string, updatedAt time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reminders").
		Set("completed", true).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCompleted - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// DeleteCompleted удаляет все выполненные напоминания (ручная очистка данных)
func (r *Repository) DeleteCompleted(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reminders").
		Where(squirrel.Eq{"completed": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCompleted - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCompleted - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteCompleted - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// DeleteAll удаляет все напоминания (используется при восстановлении из бэкапа)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, _, err := psqlbuilder.Delete("reminders").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) scanReminders(rows *sql.Rows, method string) ([]*domain.ServiceReminder, error) {
	reminders := make([]*domain.ServiceReminder, 0)

	for rows.Next() {
		var rem domain.ServiceReminder
		err := rows.Scan(
			&rem.ID,
			&rem.VehicleID,
			&rem.Title,
			&rem.Description,
			&rem.DueDate,
			&rem.Type,
			&rem.Completed,
			&rem.Urgent,
			&rem.CreatedAt,
			&rem.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reminder: %v", ErrScanRow, method, err)
		}
		reminders = append(reminders, &rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return reminders, nil
}
