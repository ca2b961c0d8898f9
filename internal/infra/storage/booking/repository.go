package booking

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

var bookingColumns = []string{
	"id",
	"vehicle_id",
	"service_type_id",
	"scheduled_date",
	"status",
	"estimated_cost",
	"actual_cost",
	"notes",
	"completed_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.ServiceBooking) (*domain.ServiceBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.VehicleID,
			b.ServiceTypeID,
			b.ScheduledDate,
			b.Status,
			b.EstimatedCost,
			b.ActualCost,
			b.Notes,
			b.CompletedDate,
			b.CreatedAt,
			b.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.ServiceBooking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.VehicleID,
		&b.ServiceTypeID,
		&b.ScheduledDate,
		&b.Status,
		&b.EstimatedCost,
		&b.ActualCost,
		&b.Notes,
		&b.CompletedDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &b, nil
}

// List получает бронирования, отсортированные по дате записи (ASC).
// Опционально фильтрует по автомобилю и/или статусу.
func (r *Repository) List(ctx context.Context, vehicleID *string, status *domain.BookingStatus) ([]*domain.ServiceBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("scheduled_date ASC")

	if vehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_id": *vehicleID})
	}
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "List")
}

// GetByVehicleAndDay получает бронирования автомобиля на указанный
// календарный день (любой статус). Внутри транзакции блокирует строки
// (FOR UPDATE) для проверки конфликта при создании.
func (r *Repository) GetByVehicleAndDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.ServiceBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Expr("scheduled_date::date = ?::date", day)).
		OrderBy("scheduled_date ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "GetByVehicleAndDay")
}

// CountActiveByVehicle считает бронирования автомобиля в нетерминальных статусах
func (r *Repository) CountActiveByVehicle(ctx context.Context, vehicleID string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, 0, len(domain.AllowedTransitions))
	for status := range domain.AllowedTransitions {
		if !status.IsTerminal() {
			activeStatuses = append(activeStatuses, string(status))
		}
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByVehicle - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования вместе с фактической
// стоимостью и датой завершения (для перехода в completed)
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.BookingStatus,
	actualCost *float64,
	completedDate *time.Time,
	updatedAt time.Time,
) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id})

	if actualCost != nil {
		updateBuilder = updateBuilder.Set("actual_cost", *actualCost)
	}
	if completedDate != nil {
		updateBuilder = updateBuilder.Set("completed_date", *completedDate)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteAll удаляет все бронирования (используется при восстановлении из бэкапа)
func (r *Repository) DeleteAll(ctx context.Context) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, _, err := psqlbuilder.Delete("bookings").ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: DeleteAll - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) scanBookings(rows *sql.Rows, method string) ([]*domain.ServiceBooking, error) {
	bookings := make([]*domain.ServiceBooking, 0)

	for rows.Next() {
		var b domain.ServiceBooking
		err := rows.Scan(
			&b.ID,
			&b.VehicleID,
			&b.ServiceTypeID,
			&b.ScheduledDate,
			&b.Status,
			&b.EstimatedCost,
			&b.ActualCost,
			&b.Notes,
			&b.CompletedDate,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}
